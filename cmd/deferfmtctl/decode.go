package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deferfmt/deferfmt/decoder"
	"github.com/deferfmt/deferfmt/registry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decode <frames-file>",
		Short: "Decode a file of length-prefixed frames against the registry",
		Long: `decode reads a sequence of frames, each preceded by a 4-byte
big-endian length, and renders every one against statements already
registered in the state directory's registry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}

// decodedLine is the JSON shape of one rendered frame.
type decodedLine struct {
	Crate   string  `json:"crate"`
	PrintID string  `json:"print_id"`
	Stamp   *uint64 `json:"stamp,omitempty"`
	Text    string  `json:"text"`
}

func runDecode(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("deferfmtctl: %w", err)
	}

	reg, err := registry.Open(registry.WithStateDir(stateDir))
	if err != nil {
		return fmt.Errorf("deferfmtctl: open registry: %w", err)
	}
	defer reg.Close()

	dec := decoder.New(reg)

	lines, err := decodeAll(dec, data)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(lines)
	}
	for _, l := range lines {
		fmt.Println(l.Text)
	}
	return nil
}

// decodeAll splits data into length-prefixed frames and decodes each one
// in turn. A frame that fails to decode is reported and skipped; the
// framing itself (unlike the wire frames within it) is this CLI's own
// convention, not part of the core protocol.
func decodeAll(dec *decoder.Decoder, data []byte) ([]decodedLine, error) {
	var out []decodedLine
	pos := 0
	for pos < len(data) {
		if len(data)-pos < 4 {
			return nil, fmt.Errorf("deferfmtctl: truncated length prefix at offset %d", pos)
		}
		n := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4
		if uint64(len(data)-pos) < uint64(n) {
			return nil, fmt.Errorf("deferfmtctl: truncated frame body at offset %d", pos)
		}
		body := data[pos : pos+int(n)]
		pos += int(n)

		frame, _, err := dec.DecodeFrame(body)
		if err != nil {
			printError("decode frame at offset %d: %v", pos-int(n)-4, err)
			continue
		}

		var stamp *uint64
		if frame.Stamp != nil {
			v := uint64(*frame.Stamp)
			stamp = &v
		}

		out = append(out, decodedLine{
			Crate:   frame.Crate.Name,
			PrintID: frame.PrintID.String(),
			Stamp:   stamp,
			Text:    renderSegments(frame.Segments),
		})
	}
	return out, nil
}
