package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nextup-mentor/nextup-api/internal/client"
	"github.com/nextup-mentor/nextup-api/internal/dashboard"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "nextup-admin",
	Short:         "Manage NextUp Mentor enrollments, messages, packages and destinations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("api-url", "http://localhost:8080/api/v1", "API base URL including the prefix")
	flags.String("password", "", "admin password")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.Bool("json", false, "print JSON instead of tables")

	viper.SetEnvPrefix("NEXTUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"api-url", "password", "timeout", "json"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openSession logs in against the API and returns an unlocked dashboard
// session backed by the typed client.
func openSession(ctx context.Context) (*dashboard.Session, *client.Client, error) {
	password := viper.GetString("password")
	if password == "" {
		return nil, nil, fmt.Errorf("admin password required (--password or NEXTUP_PASSWORD)")
	}

	api := client.New(viper.GetString("api-url"), &http.Client{Timeout: viper.GetDuration("timeout")})
	if _, err := api.Login(ctx, password); err != nil {
		return nil, nil, err
	}

	session := dashboard.NewSession(api, password)
	if err := session.Unlock(password); err != nil {
		return nil, nil, err
	}
	return session, api, nil
}
