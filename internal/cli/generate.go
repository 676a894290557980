package cli

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/nonzero/internal/codegen"
	"github.com/roach88/nonzero/internal/config"
	"github.com/roach88/nonzero/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output     string // output file path; stdout when empty
	Package    string // Go package of the generated file
	ImportPath string // import path of the wrapper package
	DB         string // generation ledger
	Force      bool   // write even when the ledger says the output is current
	Config     string // explicit nonzerogen.toml
}

// GenerateResult summarizes one generate run.
type GenerateResult struct {
	Package   string `json:"package"`
	Output    string `json:"output,omitempty"`
	DeclCount int    `json:"decl_count"`
	DeclHash  string `json:"decl_hash"`
	Skipped   bool   `json:"skipped"`
	RunID     string `json:"run_id,omitempty"`
	Seq       int64  `json:"seq,omitempty"`
	Source    string `json:"source,omitempty"` // generated code when writing to stdout
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <decls>",
		Short: "Generate Go declarations of non-zero constants",
		Long: `Check a declaration file and render one Go variable per declaration.

Every variable is built with nonzero.Lit from an untyped constant that is
also guarded by a constant division, so the generated file only compiles
while every value stays non-zero.

Defaults for --output, --package, --import and --db are read from the
nearest nonzerogen.toml above the declaration file. With --db the run is
recorded in a SQLite ledger and skipped when neither the declarations nor
the output changed since the last run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVarP(&opts.Package, "package", "p", "", "package of the generated file (default: package of the declarations)")
	cmd.Flags().StringVar(&opts.ImportPath, "import", codegen.DefaultImportPath, "import path of the nonzero package")
	cmd.Flags().StringVar(&opts.DB, "db", "", "generation ledger (SQLite)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "write even if the ledger says the output is up to date")
	cmd.Flags().StringVar(&opts.Config, "config", "", "configuration file (default: nearest "+config.FileName+")")

	return cmd
}

func runGenerate(opts *GenerateOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if err := applyConfig(opts, path, cmd, formatter); err != nil {
		return outputCommandError(formatter, ErrCodeConfig, err.Error(), nil)
	}

	result, errs := LoadDecls(path)
	if result == nil && len(errs) > 0 {
		var loadErr *LoadError
		if errors.As(errs[0], &loadErr) {
			return outputCommandError(formatter, loadErr.Code, loadErr.Message, nil)
		}
		return outputCommandError(formatter, ErrCodeGeneric, errs[0].Error(), nil)
	}
	if len(errs) > 0 {
		return outputDiagnostics(formatter, "Generation", toDiagnostics(errs), ExitCommandError)
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = result.File.Package
	}

	src, err := codegen.Generate(result.Values, codegen.Options{
		Package:    pkg,
		Source:     filepath.Base(path),
		ImportPath: opts.ImportPath,
	})
	if err != nil {
		return outputCommandError(formatter, ErrCodeGenerate, err.Error(), nil)
	}

	res := GenerateResult{
		Package:   pkg,
		Output:    opts.Output,
		DeclCount: len(result.Values),
		DeclHash:  result.Hash,
	}

	if opts.Output == "" {
		if formatter.Format == "json" {
			res.Source = string(src)
			return formatter.Success(res)
		}
		_, err := formatter.Writer.Write(src)
		return err
	}

	if err := writeGenerated(cmd.Context(), opts, result, pkg, src, &res, formatter); err != nil {
		return err
	}

	return outputGenerateSuccess(formatter, res)
}

// applyConfig fills options the user did not set on the command line from
// the configuration file.
func applyConfig(opts *GenerateOptions, declPath string, cmd *cobra.Command, formatter *OutputFormatter) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.Config != "" {
		cfg, err = config.LoadFile(opts.Config)
	} else {
		cfg, err = config.FindAndLoad(searchDir(declPath))
	}
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	formatter.VerboseLog("Using configuration from %s", cfg.Dir)

	flags := cmd.Flags()
	if !flags.Changed("output") && cfg.Generate.Output != "" {
		opts.Output = cfg.OutputPath()
	}
	if !flags.Changed("package") && cfg.Generate.Package != "" {
		opts.Package = cfg.Generate.Package
	}
	if !flags.Changed("import") && cfg.Generate.Import != "" {
		opts.ImportPath = cfg.Generate.Import
	}
	if !flags.Changed("db") && cfg.Generate.DB != "" {
		opts.DB = cfg.DBPath()
	}
	return nil
}

// searchDir is the directory the configuration search starts from.
func searchDir(declPath string) string {
	if info, err := os.Stat(declPath); err == nil && info.IsDir() {
		return declPath
	}
	return filepath.Dir(declPath)
}

// writeGenerated writes src to the output file, consulting and updating the
// ledger when one is configured.
func writeGenerated(ctx context.Context, opts *GenerateOptions, result *LoadResult, pkg string, src []byte, res *GenerateResult, formatter *OutputFormatter) error {
	if ctx == nil {
		ctx = context.Background()
	}

	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return outputCommandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("resolving output path: %v", err), nil)
	}
	outputHash := contentHash(src)

	var st *store.Store
	if opts.DB != "" {
		st, err = store.Open(opts.DB)
		if err != nil {
			return outputStoreError(formatter, err)
		}
		defer st.Close()

		current, err := upToDate(ctx, st, output, result.Hash, outputHash)
		if err != nil {
			return outputStoreError(formatter, err)
		}
		if current && !opts.Force {
			slog.Debug("output up to date, skipping write", "output", output, "decl_hash", result.Hash)
			res.Skipped = true
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return outputCommandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("creating output directory: %v", err), nil)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return outputCommandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
	}
	formatter.VerboseLog("Wrote %d byte(s) to %s", len(src), output)

	if st == nil {
		return nil
	}

	gen, err := st.RecordGeneration(ctx, store.Generation{
		DeclHash:   result.Hash,
		Source:     result.File.Path,
		Output:     output,
		Package:    pkg,
		DeclCount:  len(result.Values),
		OutputHash: outputHash,
	})
	if err != nil {
		return outputStoreError(formatter, err)
	}
	slog.Info("generation recorded", "id", gen.ID, "seq", gen.Seq, "output", output)

	res.RunID = gen.ID
	res.Seq = gen.Seq
	return nil
}

// upToDate reports whether the last recorded run for output used the same
// declarations and the file on disk still holds what that run wrote.
func upToDate(ctx context.Context, st *store.Store, output, declHash, outputHash string) (bool, error) {
	last, err := st.LatestGeneration(ctx, output)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if last.DeclHash != declHash || last.OutputHash != outputHash {
		return false, nil
	}

	onDisk, err := os.ReadFile(output)
	if err != nil {
		return false, nil
	}
	return contentHash(onDisk) == outputHash, nil
}

func contentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// outputGenerateSuccess outputs the generate summary.
func outputGenerateSuccess(formatter *OutputFormatter, res GenerateResult) error {
	if formatter.Format == "json" {
		return formatter.Success(res)
	}

	if res.Skipped {
		fmt.Fprintf(formatter.Writer, "✓ %s is up to date (%d constant(s))\n", res.Output, res.DeclCount)
		return nil
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %d constant(s) in package %s\n", res.DeclCount, res.Package)
	fmt.Fprintf(formatter.Writer, "Wrote %s\n", res.Output)
	if res.RunID != "" {
		fmt.Fprintf(formatter.Writer, "Recorded run %s (seq %d)\n", res.RunID, res.Seq)
	}
	return nil
}
