package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"caesar/internal/adapters/cipher"
	"caesar/internal/adapters/stream"
	"caesar/internal/core/domain"
	"caesar/internal/core/ports"
	"caesar/internal/shared/config"
	"caesar/internal/shared/logger"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	encryptKey string
	decryptKey string
)

// usageError marks errors caused by bad invocation rather than runtime
// failure, so main can print usage and pick the right exit code.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "caesar (-d KEY | -e KEY) [msg]",
	Short: "Encrypt or decrypt a message with a Caesar cipher",
	Long: `Encrypt or decrypt the supplied message with a given key. The key
should be a non-negative integer. This integer is used to either
right-shift (encrypt) or left-shift (decrypt) the ASCII letters in
the message.

Any non-alphabetic bytes in the message are left unchanged. When no
message argument is given, the message is read from standard input.
The encrypted or decrypted message is written to standard output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return &usageError{fmt.Sprintf("expected at most one message argument, got %d", len(args))}
		}
		return nil
	},
	RunE: runCipher,
}

func init() {
	rootCmd.Flags().StringVarP(&encryptKey, "encrypt", "e", "", "encrypt the message using the given key")
	rootCmd.Flags().StringVarP(&decryptKey, "decrypt", "d", "", "decrypt the message using the given key")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err.Error()}
	})
}

func runCipher(cmd *cobra.Command, args []string) error {
	// 1. Work out the cipher direction and key
	mode, err := selectMode(cmd.Flags().Changed("encrypt"), cmd.Flags().Changed("decrypt"))
	if err != nil {
		return err
	}

	rawKey := encryptKey
	if mode == domain.ModeDecrypt {
		rawKey = decryptKey
	}
	key, err := domain.ParseKey(rawKey)
	if err != nil {
		return &usageError{fmt.Sprintf("invalid key %q: %v", rawKey, err)}
	}

	// 2. Load configuration and initialize the logger
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	baseLogger := logger.New(cfg.AppEnv == "dev", cfg.LogLevel)
	log := baseLogger.With().Str("run_id", uuid.NewString()).Logger()

	shift := domain.EffectiveShift(mode, key)
	log.Debug().
		Str("mode", string(mode)).
		Int("key", key).
		Int("shift", shift).
		Msg("Starting transform")

	// 3. Wire the cipher into the stream applicator and run it
	cipherSvc := cipher.NewCaesarService(shift, &log)
	applicator := stream.NewApplicator(cipherSvc, cfg.BufferSize, &log)

	if err := transform(cmd.Context(), applicator, args, os.Stdin, os.Stdout); err != nil {
		return err
	}

	// Cosmetic only: piped output must stay byte-exact
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println()
	}
	return nil
}

// selectMode enforces that exactly one of -e/-d was given.
func selectMode(encSet, decSet bool) (domain.Mode, error) {
	switch {
	case encSet && decSet:
		return "", &usageError{"only one of -d or -e may be specified"}
	case encSet:
		return domain.ModeEncrypt, nil
	case decSet:
		return domain.ModeDecrypt, nil
	}
	return "", &usageError{"either -d or -e is required"}
}

// transform routes the message argument, or stdin when absent, through
// the applicator.
func transform(ctx context.Context, app ports.StreamPort, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 1 {
		return app.ApplyMessage([]byte(args[0]), out)
	}
	return app.ApplyStream(ctx, in, out)
}
