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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rstms/dataprint/printer"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [FILE]",
	Short: "render bytes from a file or stdin",
	Long: `
Read FILE (or stdin when FILE is absent or '-') and write the selected
rendering to stdout or the --output file.

types: text, hex, escaped, binary, hexdump, hexonly
`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "-"
		if len(args) > 0 {
			filename = args[0]
		}
		data, err := readInput(cmd, filename)
		if err != nil {
			return err
		}
		dumpType, err := printer.ParseDumpType(ViperGetString("type"))
		if err != nil {
			return err
		}
		if dumpType == printer.DumpHexDump && ViperGetBool("no_text") {
			dumpType = printer.DumpHexOnly
		}
		config := printer.Config{
			BytesPerLine: ViperGetInt("width"),
			IncludeText:  dumpType == printer.DumpHexDump,
		}
		if ViperGetBool("verbose") {
			log.Printf("dump: %d bytes from %s as %s width=%d\n", len(data), filename, dumpType, config.BytesPerLine)
		}
		if dumpType == printer.DumpHexDump || dumpType == printer.DumpHexOnly {
			err := config.Validate()
			if err != nil {
				return err
			}
			if len(data) == 0 {
				return nil
			}
			return writeOutput(cmd, func(w io.Writer) error {
				return printer.WriteHexDump(w, data, config)
			})
		}
		output, err := printer.Print(dumpType, data, config)
		if err != nil {
			return err
		}
		if len(output) == 0 {
			return nil
		}
		return writeOutput(cmd, func(w io.Writer) error {
			_, err := w.Write(output)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	OptionString(dumpCmd, "type", "T", printer.DumpHexDump.String(), "output type")
	OptionInt(dumpCmd, "width", "w", printer.DefaultBytesPerLine, "bytes per hex dump line")
	OptionSwitch(dumpCmd, "no-text", "n", "omit the hex dump text column")
	OptionString(dumpCmd, "output", "o", "", "output filename")
}

func readInput(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed reading input: %w", err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, render func(io.Writer) error) error {
	filename := ViperGetString("output")
	if filename == "" || filename == "-" {
		return render(cmd.OutOrStdout())
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed creating output: %w", err)
	}
	err = render(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed writing output: %w", err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed closing output: %w", err)
	}
	if ViperGetBool("verbose") {
		log.Printf("wrote %s\n", filename)
	}
	return nil
}
