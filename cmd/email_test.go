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
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestEmailSenderFlag(t *testing.T) {
	if emailCmd.Flags().Lookup("sender") == nil {
		t.Error("Expected email to define a --sender flag")
	}
	// The sender must not shadow the root --from period filter.
	if emailCmd.Flags().Lookup("from") != nil {
		t.Error("email defines a local --from, shadowing the period filter")
	}
	if rootCmd.PersistentFlags().Lookup("from") == nil {
		t.Error("Expected the root --from period filter to exist")
	}
}

func TestEmailPreRunE(t *testing.T) {
	viper.Set("dryRun", false)
	viper.Set("sender", "")
	viper.Set("sendgrid_api_key", "")
	t.Cleanup(func() {
		viper.Set("dryRun", false)
		viper.Set("sender", "")
		viper.Set("sendgrid_api_key", "")
	})

	err := emailCmd.PreRunE(emailCmd, []string{"export/", "user@example.com"})
	if err == nil || !strings.Contains(err.Error(), "sender") {
		t.Errorf("Expected a missing-sender error, got %v", err)
	}

	viper.Set("sender", "reports@example.com")
	err = emailCmd.PreRunE(emailCmd, []string{"export/", "user@example.com"})
	if err == nil || !strings.Contains(err.Error(), "sendgrid_api_key") {
		t.Errorf("Expected a missing-API-key error, got %v", err)
	}

	// Dry runs need neither.
	viper.Set("sender", "")
	viper.Set("dryRun", true)
	if err := emailCmd.PreRunE(emailCmd, []string{"export/", "user@example.com"}); err != nil {
		t.Errorf("Expected no error for a dry run, got %v", err)
	}
}
