// Package main provides the CLI entry point for chartml.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Holimetrix/chartml/pkg/chartml"
	"github.com/Holimetrix/chartml/pkg/chartml/input"
	"github.com/Holimetrix/chartml/pkg/chartml/models"
)

var (
	outputPath    string
	xlsxPath      string
	indent        int
	chartTypeName string
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartml",
		Short: "Generate and update office-document chart XML",
		Long: `chartml turns a JSON chart description into a schema-valid chart XML
part, and updates the series data of an existing chart XML part in place
without disturbing manual formatting.`,
		SilenceUsage: true,
	}

	generateCmd := &cobra.Command{
		Use:   "generate [description.json]",
		Short: "Generate chart XML from a chart description",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	generateCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the backing workbook to this path")
	generateCmd.Flags().IntVar(&indent, "indent", 2, "XML indentation width")

	updateCmd := &cobra.Command{
		Use:   "update [chart.xml] [description.json]",
		Short: "Replace the series data of an existing chart XML part",
		Args:  cobra.ExactArgs(2),
		RunE:  runUpdate,
	}
	updateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: rewrite in place)")
	updateCmd.Flags().StringVar(&chartTypeName, "chart-type", "", "Chart type name (default: detect from the document)")

	rootCmd.AddCommand(generateCmd, updateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	desc, err := readDescription(args[0])
	if err != nil {
		return err
	}
	chart, err := desc.Build()
	if err != nil {
		return fmt.Errorf("invalid chart description: %w", err)
	}

	opts := chartml.Options{
		Date1904:       desc.Date1904,
		RoundedCorners: desc.RoundedCorners,
		Indent:         &indent,
	}

	var chartXML, xlsxBlob []byte
	if xlsxPath != "" {
		chartXML, xlsxBlob, err = chartml.GenerateWithWorkbook(chart, opts)
	} else {
		chartXML, err = chartml.Generate(chart, opts)
	}
	if err != nil {
		return err
	}

	if xlsxPath != "" {
		if err := os.WriteFile(xlsxPath, xlsxBlob, 0o644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		log.Info().Str("path", xlsxPath).Msg("workbook written")
	}
	return writeOutput(chartXML, outputPath)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	chartPath := args[0]
	chartXML, err := os.ReadFile(chartPath)
	if err != nil {
		return fmt.Errorf("read chart: %w", err)
	}
	desc, err := readDescription(args[1])
	if err != nil {
		return err
	}
	if len(desc.Plots) != 1 {
		return fmt.Errorf("update description must contain exactly one plot, got %d", len(desc.Plots))
	}
	series, err := desc.Plots[0].BuildSeries()
	if err != nil {
		return fmt.Errorf("invalid chart description: %w", err)
	}

	var updated []byte
	if chartTypeName != "" {
		chartType, err := models.ParseChartType(chartTypeName)
		if err != nil {
			return err
		}
		updated, err = chartml.ReplaceSeriesData(chartXML, chartType, series)
		if err != nil {
			return err
		}
	} else {
		updated, err = chartml.ReplaceSeriesDataAuto(chartXML, series)
		if err != nil {
			return err
		}
	}

	dest := outputPath
	if dest == "" {
		dest = chartPath
	}
	log.Info().Str("path", dest).Int("series", len(series)).Msg("chart updated")
	return writeOutput(updated, dest)
}

func readDescription(path string) (*input.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	return input.Parse(data)
}

func writeOutput(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
