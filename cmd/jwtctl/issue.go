package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybergodev/jwtcore"
)

func newIssueCmd() *cobra.Command {
	var (
		keyB64   string
		alg      string
		issuer   string
		subject  string
		audience []string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a new compact JWT with an HMAC key",
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

			now := time.Now()
			builder := jwtcore.NewRawJwtBuilder().SetIssuer(issuer).SetSubject(subject)
			for _, aud := range audience {
				builder = builder.AddAudience(aud)
			}
			if err := builder.SetIssuedAt(now); err != nil {
				return err
			}
			if err := builder.SetExpiration(now.Add(ttl)); err != nil {
				return err
			}

			raw, err := builder.Build()
			if err != nil {
				return err
			}

			token, err := handle.ComputeAndEncode(raw)
			if err != nil {
				logger.Error("issue failed", zap.Error(err))
				return err
			}

			logger.Info("token issued", zap.String("subject", subject), zap.String("alg", alg))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyB64, "key", "", "HMAC key, base64url-without-padding")
	cmd.Flags().StringVar(&alg, "alg", string(jwtcore.HS256), "MAC algorithm (HS256, HS384, HS512)")
	cmd.Flags().StringVar(&issuer, "issuer", "", "iss claim")
	cmd.Flags().StringVar(&subject, "subject", "", "sub claim")
	cmd.Flags().StringSliceVar(&audience, "audience", nil, "aud claim, may be repeated")
	cmd.Flags().DurationVar(&ttl, "ttl", 15*time.Minute, "token lifetime")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("subject")

	return cmd
}
