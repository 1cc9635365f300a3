/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/report"
)

var emailCmd = &cobra.Command{
	Use:   "email <path> <address...>",
	Short: "Emails the HTML rediscovery report",
	Long: `Builds the full HTML report from the export at the given path and sends
it to each address via SendGrid.`,
	Args: cobra.MinimumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("dryRun") {
			return nil
		}
		if viper.GetString("sender") == "" {
			return fmt.Errorf("required flag(s) \"sender\" not set")
		}
		if viper.GetString("sendgrid_api_key") == "" {
			return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(sendReport(args[0], args[1:]))
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	// Named --sender, not --from: the root --from period filter applies
	// here too.
	var sender string
	emailCmd.Flags().StringVar(&sender, "sender", "", "From email address")
	viper.BindPFlag("sender", emailCmd.Flags().Lookup("sender"))

	var apiKey string
	emailCmd.Flags().StringVar(&apiKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", emailCmd.Flags().Lookup("sendgrid_api_key"))

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func sendReport(path string, recipients []string) error {
	events, filesRead, err := resolveEvents([]string{path})
	if err != nil {
		return err
	}

	cfg := analysis.DefaultConfig()
	now := time.Now()
	summary := analysis.BuildSummary(analysis.Aggregate(events), cfg, now)
	sections := report.BuildSections(summary, cfg)

	var body bytes.Buffer
	if err := report.RenderHTML(&body, "Spotify Rediscovery Report", reportParams(filesRead), sections, now); err != nil {
		return err
	}

	subject := fmt.Sprintf("Spotify Rediscovery Report %s", now.UTC().Format("2006-01-02"))

	if viper.GetBool("dryRun") {
		fmt.Printf("Would have sent email to %v:\nsubject: %s\n%s\n", recipients, subject, body.String())
		return nil
	}

	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	from := mail.NewEmail("spotify-rediscover", viper.GetString("sender"))
	plain := "Your rediscovery report is attached as HTML."

	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)
	for _, to := range recipients {
		if err := limiter.Wait(context.Background()); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		message := mail.NewSingleEmail(from, subject, mail.NewEmail(to, to), plain, body.String())
		err := retry.Do(
			func() error {
				response, err := client.Send(message)
				if err != nil {
					return err
				}
				if response.StatusCode >= 400 {
					return fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body)
				}
				return nil
			},
			retry.Attempts(3),
		)
		if err != nil {
			return fmt.Errorf("sending to %s: %w", to, err)
		}
		fmt.Printf("Sent report to %s\n", to)
	}

	return nil
}
