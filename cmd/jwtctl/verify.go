package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybergodev/jwtcore"
)

func newVerifyCmd() *cobra.Command {
	var (
		keyB64         string
		alg            string
		token          string
		expectIssuer   string
		expectSubject  string
		expectAudience string
		clockSkew      time.Duration
		allowNoExpiry  bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a compact JWT and print its claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := jwtcore.DecodeBase64UrlKey(keyB64)
			if err != nil {
				return fmt.Errorf("decode key: %w", err)
			}

			hmacKey, err := jwtcore.NewHMACKey(jwtcore.Algorithm(alg), key)
			if err != nil {
				return fmt.Errorf("build key: %w", err)
			}
			defer hmacKey.Destroy()

			handle := jwtcore.NewJWTMAC(hmacKey)

			var opts []jwtcore.ValidatorOption
			if expectIssuer != "" {
				opts = append(opts, jwtcore.ExpectIssuer(expectIssuer))
			}
			if expectSubject != "" {
				opts = append(opts, jwtcore.ExpectSubject(expectSubject))
			}
			if expectAudience != "" {
				opts = append(opts, jwtcore.ExpectAudience(expectAudience))
			}
			opts = append(opts, jwtcore.WithClockSkew(clockSkew), jwtcore.AllowMissingExpiration(allowNoExpiry))

			validator := jwtcore.NewValidator(opts...)
			verified, err := handle.VerifyAndDecode(token, validator)
			if err != nil {
				logger.Info("verify failed", zap.Error(err))
				return err
			}

			logger.Info("token verified")
			fmt.Fprintln(cmd.OutOrStdout(), string(verified.JSON()))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyB64, "key", "", "HMAC key, base64url-without-padding")
	cmd.Flags().StringVar(&alg, "alg", string(jwtcore.HS256), "MAC algorithm (HS256, HS384, HS512)")
	cmd.Flags().StringVar(&token, "token", "", "compact JWT to verify")
	cmd.Flags().StringVar(&expectIssuer, "expect-issuer", "", "require this iss value")
	cmd.Flags().StringVar(&expectSubject, "expect-subject", "", "require this sub value")
	cmd.Flags().StringVar(&expectAudience, "expect-audience", "", "require aud to contain this value")
	cmd.Flags().DurationVar(&clockSkew, "clock-skew", 0, "tolerance for exp/nbf checks, max 10m")
	cmd.Flags().BoolVar(&allowNoExpiry, "allow-missing-expiration", false, "tolerate tokens with no exp claim")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("token")

	return cmd
}
