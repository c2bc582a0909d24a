/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rstms/dataprint/printer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func optionKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func OptionString(cmd *cobra.Command, name, flag, defaultValue, description string) {
	cmd.PersistentFlags().StringP(name, flag, defaultValue, description)
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func OptionInt(cmd *cobra.Command, name, flag string, defaultValue int, description string) {
	cmd.PersistentFlags().IntP(name, flag, defaultValue, description)
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

func OptionSwitch(cmd *cobra.Command, name, flag, description string) {
	cmd.PersistentFlags().BoolP(name, flag, false, description)
	err := viper.BindPFlag(optionKey(name), cmd.PersistentFlags().Lookup(name))
	cobra.CheckErr(err)
}

// InitConfig reads the --config file when given, otherwise
// ~/.config/dataprint/config.yaml if it exists. DATAPRINT_* environment
// variables override file values.
func InitConfig() {
	viper.SetEnvPrefix("dataprint")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	ViperSetDefault("type", printer.DumpHexDump.String())
	ViperSetDefault("width", printer.DefaultBytesPerLine)
	ViperSetDefault("view", "hex")
	ViperSetDefault("separator", 8)

	filename := ViperGetString("config")
	if filename == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		filename = filepath.Join(home, ".config", "dataprint", "config.yaml")
		if _, err := os.Stat(filename); err != nil {
			return
		}
	}
	viper.SetConfigFile(filename)
	err := viper.ReadInConfig()
	cobra.CheckErr(err)

	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		if err == nil {
			log.Printf("config file: %s\n### START ###\n%s\n### END ###\n", viper.ConfigFileUsed(), buf.String())
		}
	}
}

func ViperGetString(key string) string {
	return viper.GetString(key)
}

func ViperGetBool(key string) bool {
	return viper.GetBool(key)
}

func ViperGetInt(key string) int {
	return viper.GetInt(key)
}

func ViperSetDefault(key string, value any) {
	viper.SetDefault(key, value)
}
