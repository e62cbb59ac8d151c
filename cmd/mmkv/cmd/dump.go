package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/arloliu/mmkv"
	"github.com/arloliu/mmkv/compress"
	"github.com/arloliu/mmkv/encoding"
	"github.com/arloliu/mmkv/format"
	"github.com/arloliu/mmkv/internal/config"
	"github.com/arloliu/mmkv/internal/hash"
	"github.com/arloliu/mmkv/internal/log"
	"github.com/arloliu/mmkv/internal/pool"
	"github.com/arloliu/mmkv/store"
)

const previewLimit = 48

type dumpFlags struct {
	Input            string
	Key              string
	CRCFile          string
	Strings          bool
	History          bool
	Format           string
	InputCompression string
}

// dumpRow is one rendered entry. Value holds the string form with --strings,
// otherwise the hex encoding of the raw bytes.
type dumpRow struct {
	Key   string `json:"key"`
	KeyID string `json:"key_id"`
	Size  int    `json:"size"`
	Value string `json:"value"`
}

func newDumpCommand(g *globalFlags) *cobra.Command {
	f := &dumpFlags{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the entries of an MMKV store",
		Example: `  mmkv dump -i settings.plain --strings
  mmkv dump -i settings -k 30313233343536373839616263646566 --format json
  mmkv dump -i settings.zst --input-compression zstd --history`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				f.Format = g.cfg.Format
			}
			if err := runDump(cmd, f, g.cfg); err != nil {
				return fmt.Errorf("failed to dump mmkv: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&f.Input, "input", "i", "", "path to the mmkv store")
	cmd.Flags().StringVarP(&f.Key, "key", "k", "", "hex-encoded key; decrypts the store before dumping")
	cmd.Flags().StringVarP(&f.CRCFile, "crc_file", "c", "", "path to the .crc sidecar (default <input>.crc)")
	cmd.Flags().BoolVar(&f.Strings, "strings", false, "decode keys and values as strings")
	cmd.Flags().BoolVar(&f.History, "history", false, "list every entry in file order, including overwritten ones")
	cmd.Flags().StringVar(&f.Format, "format", "table", "output format: table or json")
	cmd.Flags().StringVar(&f.InputCompression, "input-compression", "none", "compression of the input file: none, zstd, s2, lz4")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runDump(cmd *cobra.Command, f *dumpFlags, cfg *config.Config) error {
	ctx := cmd.Context()

	outFormat, err := format.ParseOutputFormat(f.Format)
	if err != nil {
		return err
	}
	ct, err := format.ParseCompressionType(f.InputCompression)
	if err != nil {
		return err
	}

	bb, err := readSource(f.Input)
	if err != nil {
		return err
	}
	defer pool.PutFileBuffer(bb)

	buf, err := compress.Decompress(ct, bb.Bytes())
	if err != nil {
		return err
	}

	key, err := dumpKey(f, cfg)
	if err != nil {
		return err
	}
	if key != nil {
		crcPath := f.CRCFile
		if crcPath == "" {
			crcPath = mmkv.DefaultCRCPath(f.Input)
		}
		crcBuf, err := readSource(crcPath)
		if err != nil {
			return err
		}
		defer pool.PutFileBuffer(crcBuf)

		// The pooled input stays untouched; the plain copy is owned by this run.
		if buf, err = mmkv.Decrypt(buf, crcBuf.Bytes(), key, mmkv.WithCopy()); err != nil {
			return fmt.Errorf("error when deciphering enciphered file: %w", err)
		}
	}

	rows, err := collectRows(buf, f.Strings, f.History)
	if err != nil {
		return err
	}

	log.Debug(ctx, "decoded store", log.Fields{
		"input":   f.Input,
		"entries": len(rows),
		"strings": f.Strings,
	})

	out := cmd.OutOrStdout()
	if outFormat == format.OutputJSON {
		return renderJSON(out, rows)
	}
	renderTable(out, rows, f.Strings)

	return nil
}

// dumpKey returns nil when the store should be read as plain. Passing -c
// without -k falls back to the configured key.
func dumpKey(f *dumpFlags, cfg *config.Config) ([]byte, error) {
	if f.Key == "" && f.CRCFile == "" {
		return nil, nil
	}
	key, err := resolveKey(f.Key, cfg)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, errNoKey
	}

	return key, nil
}

func collectRows(buf []byte, asStrings, history bool) ([]dumpRow, error) {
	if history {
		entries, err := store.Entries(buf)
		if err != nil {
			return nil, err
		}
		rows := make([]dumpRow, 0, len(entries))
		for _, e := range entries {
			row, err := newRow(e.Key, e.Value, asStrings)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}

		return rows, nil
	}

	if asStrings {
		values, err := store.DecodeStrings(buf)
		if err != nil {
			return nil, err
		}
		rows := make([]dumpRow, 0, len(values))
		for k, v := range values {
			rows = append(rows, dumpRow{Key: k, KeyID: hash.KeyIDString([]byte(k)), Size: len(v), Value: v})
		}
		sortRows(rows)

		return rows, nil
	}

	values, err := store.Decode(buf)
	if err != nil {
		return nil, err
	}
	rows := make([]dumpRow, 0, len(values))
	for k, v := range values {
		row, err := newRow([]byte(k), v, false)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	sortRows(rows)

	return rows, nil
}

func newRow(key, value []byte, asStrings bool) (dumpRow, error) {
	row := dumpRow{
		Key:   encoding.LossyString(key),
		KeyID: hash.KeyIDString(key),
		Size:  len(value),
	}
	if !asStrings {
		row.Value = hex.EncodeToString(value)
		return row, nil
	}

	s, err := encoding.ReadString(value)
	if err != nil {
		return dumpRow{}, fmt.Errorf("value of key %q: %w", row.Key, err)
	}
	row.Value = s
	row.Size = len(s)

	return row, nil
}

func sortRows(rows []dumpRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
}

func renderJSON(w io.Writer, rows []dumpRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rows)
}

func renderTable(w io.Writer, rows []dumpRow, asStrings bool) {
	valueHeader := "Value (hex)"
	if asStrings {
		valueHeader = "Value"
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"No.", "Key", "Key ID", "Size", valueHeader})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 2, AlignHeader: text.AlignCenter},
		{Number: 3, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 5, AlignHeader: text.AlignCenter},
	})
	for i, r := range rows {
		t.AppendRow(table.Row{i + 1, r.Key, r.KeyID, r.Size, preview(r.Value)})
	}
	t.AppendFooter(table.Row{"", "Total", "", len(rows), ""})
	t.Render()
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLimit {
		return s
	}

	return string(r[:previewLimit]) + "…"
}
