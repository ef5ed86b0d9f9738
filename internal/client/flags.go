package client

import (
	"github.com/MKhiriev/go-omnisearch/internal/templating"
	"github.com/spf13/cobra"
)

// templateFlags are shared by commands that build a request body from
// template files.
type templateFlags struct {
	generate     string
	replacements []string
	properties   string
	data         string
	objects      string
}

func (f *templateFlags) registerValues(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.generate, "generate", "", "Generate spec JSON file")
	cmd.Flags().StringArrayVarP(&f.replacements, "replacement", "r", nil, "Template replacement as one key=value argument (not a separate key and value), repeatable; later values win")
}

func (f *templateFlags) registerRecord(cmd *cobra.Command) {
	f.registerValues(cmd)
	cmd.Flags().StringVar(&f.properties, "properties", "", "Properties JSON template")
	cmd.Flags().StringVar(&f.data, "data", "", "Data JSON template")
	_ = cmd.MarkFlagRequired("properties")
}

func (f *templateFlags) registerObjects(cmd *cobra.Command) {
	f.registerValues(cmd)
	cmd.Flags().StringVar(&f.objects, "objects", "", "Objects JSON template")
	_ = cmd.MarkFlagRequired("objects")
}

func (f *templateFlags) request() (templating.Request, error) {
	overrides, err := templating.ParseOverrides(f.replacements)
	if err != nil {
		return templating.Request{}, err
	}
	return templating.Request{
		GeneratePath:   f.generate,
		Overrides:      overrides,
		PropertiesPath: f.properties,
		DataPath:       f.data,
	}, nil
}

type pageFlags struct {
	page     int
	pageSize int
}

func (f *pageFlags) register(cmd *cobra.Command, firstPage int) {
	cmd.Flags().IntVar(&f.page, "page", firstPage, "Page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 10, "Page size")
}
