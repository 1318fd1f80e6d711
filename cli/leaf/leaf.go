/*
Package leaf contains commands packing values into leaves and inspecting them.
*/
package leaf

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/macladson/milhouse/cli/options"
	"github.com/macladson/milhouse/pkg/packed"
	"github.com/macladson/milhouse/pkg/updates"
	"github.com/macladson/milhouse/pkg/util"
	"github.com/macladson/milhouse/pkg/value"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// handler implements commands for a single value type.
type handler interface {
	pack(w io.Writer, log *zap.Logger, args []string) error
	inspect(w io.Writer, chunk util.Hash256, length int) error
	update(w io.Writer, log *zap.Logger, args []string, writes map[uint64]string) error
}

type typed[T value.Text[T]] struct{}

var handlers = map[string]handler{
	"u8":   typed[value.Uint8]{},
	"u16":  typed[value.Uint16]{},
	"u32":  typed[value.Uint32]{},
	"u64":  typed[value.Uint64]{},
	"bool": typed[value.Bool]{},
	"u256": typed[value.Uint256]{},
	"h256": typed[value.Hash256]{},
}

// TypeNames returns the names of supported value types.
func TypeNames() []string {
	res := make([]string, 0, len(handlers))
	for name := range handlers {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// NewCommands returns leaf commands.
func NewCommands() []cli.Command {
	typesUsage := "Supported types: " + strings.Join(TypeNames(), ", ") + "."
	return []cli.Command{
		{
			Name:      "pack",
			Usage:     "Pack values into leaves",
			UsageText: "pack [--type <type>] [--config-file <file>] [--debug] <value>...",
			Description: `Packs the given values into chunks, prints index, length and chunk
   of every leaf. ` + typesUsage,
			Action: pack,
			Flags:  options.Common,
		},
		{
			Name:      "inspect",
			Usage:     "Decode values of a packed chunk",
			UsageText: "inspect [--type <type>] --length <n> <chunk>",
			Description: `Decodes the first <n> values of the hex-encoded chunk and prints
   them one per line. ` + typesUsage,
			Action: inspect,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "length, l",
					Usage: "number of values in the chunk",
				},
			}, options.Common...),
		},
		{
			Name:      "update",
			Usage:     "Apply pending writes to packed values",
			UsageText: "update [--type <type>] --file <updates.yml> <value>...",
			Description: `Packs the given values into leaves and applies pending writes from
   the YAML file (a map of list index to value) to every leaf. Writes
   may overwrite existing values or append right after the last one.
   ` + typesUsage,
			Action: update,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Usage: "YAML file with pending writes",
				},
			}, options.Common...),
		},
	}
}

// setup returns the handler for the configured value type and a logger.
func setup(ctx *cli.Context) (handler, *zap.Logger, error) {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	h, ok := handlers[cfg.ApplicationConfiguration.ValueType]
	if !ok {
		return nil, nil, cli.NewExitError(fmt.Errorf("unknown value type %q", cfg.ApplicationConfiguration.ValueType), 1)
	}
	log, _, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	return h, log, nil
}

func pack(ctx *cli.Context) error {
	h, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := h.pack(ctx.App.Writer, log, ctx.Args()); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func inspect(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("exactly one chunk is expected", 1)
	}
	chunk, err := util.Hash256DecodeString(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid chunk: %w", err), 1)
	}
	h, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := h.inspect(ctx.App.Writer, chunk, ctx.Int("length")); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func update(ctx *cli.Context) error {
	file := ctx.String("file")
	if len(file) == 0 {
		return cli.NewExitError("no file with pending writes specified", 1)
	}
	writes, err := readWrites(file)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	h, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := h.update(ctx.App.Writer, log, ctx.Args(), writes); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// readWrites reads a YAML map of list indices to textual values.
func readWrites(file string) (map[uint64]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read pending writes: %w", err)
	}
	var raw map[uint64]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending writes: %w", err)
	}
	writes := make(map[uint64]string, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			writes[k] = v
		case int:
			writes[k] = strconv.Itoa(v)
		case uint64:
			writes[k] = strconv.FormatUint(v, 10)
		case bool:
			writes[k] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("unsupported value for index %d: %v", k, v)
		}
	}
	return writes, nil
}

func parseValues[T value.Text[T]](args []string) ([]T, error) {
	var zero T
	res := make([]T, len(args))
	for i := range args {
		v, err := zero.Parse(args[i])
		if err != nil {
			return nil, fmt.Errorf("value %d (%q): %w", i, args[i], err)
		}
		res[i] = v
	}
	return res, nil
}

func printLeaves[T value.Value[T]](w io.Writer, log *zap.Logger, leaves []packed.Leaf[T]) {
	for i, l := range leaves {
		log.Debug("leaf", zap.Int("index", i), zap.Stringer("leaf", l))
		fmt.Fprintf(w, "%d: %d %s\n", i, l.Length(), l.TreeHash().StringPrefixed())
	}
}

func (typed[T]) pack(w io.Writer, log *zap.Logger, args []string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}
	leaves := packed.Pack(values)
	printLeaves(w, log, leaves)
	log.Info("values packed",
		zap.Int("values", len(values)),
		zap.Int("leaves", len(leaves)),
		zap.Int("packing factor", value.PackingFactor[T]()))
	return nil
}

func (typed[T]) inspect(w io.Writer, chunk util.Hash256, length int) error {
	l, err := packed.FromChunk[T](chunk, length)
	if err != nil {
		return err
	}
	for i, v := range l.Values() {
		fmt.Fprintf(w, "%d: %s\n", i, v)
	}
	return nil
}

func (typed[T]) update(w io.Writer, log *zap.Logger, args []string, writes map[uint64]string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}
	var (
		zero  T
		batch updates.Batch[T]
	)
	for index, s := range writes {
		v, err := zero.Parse(s)
		if err != nil {
			return fmt.Errorf("pending write %d (%q): %w", index, s, err)
		}
		batch.Add(index, v)
	}

	// Writes can append to the list, but never leave a hole.
	length := uint64(len(values))
	for _, index := range batch.Indices() {
		if index > length {
			return fmt.Errorf("pending write %d leaves a gap after list end %d", index, length)
		}
		if index == length {
			length++
		}
	}

	var (
		pf     = uint64(value.PackingFactor[T]())
		leaves = packed.Pack(values)
	)
	for uint64(len(leaves))*pf < length {
		leaves = append(leaves, packed.Empty[T]())
	}
	for i := range leaves {
		leaves[i], err = leaves[i].Update(uint64(i)*pf, &batch)
		if err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
	}
	printLeaves(w, log, leaves)
	log.Info("pending writes applied",
		zap.Int("writes", batch.Len()),
		zap.Int("leaves", len(leaves)),
		zap.Uint64("length", length))
	return nil
}
