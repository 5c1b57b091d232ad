// Command jwtctl issues and verifies compact JWTs from the command
// line, against a caller-supplied HMAC key. It is a thin shell over
// jwtcore; all the framing, signing, and validation logic lives there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logFile string
	logger  *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jwtctl",
		Short: "Issue and verify JWS-compact JWTs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(logFile)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "path to write structured logs to (stderr if empty)")

	root.AddCommand(newIssueCmd())
	root.AddCommand(newVerifyCmd())
	return root
}

func newLogger(path string) *zap.Logger {
	if path == "" {
		l, _ := zap.NewProduction()
		return l
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, writer, zap.InfoLevel)
	return zap.New(core)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
