package client

import (
	"strings"

	"github.com/MKhiriev/go-omnisearch/internal/app"
	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/spf13/cobra"
)

// queryFlags are shared by schema and search.
type queryFlags struct {
	recordType         string
	query              string
	recordIDs          []string
	objectTypes        []string
	filters            string
	hidden             bool
	disableAutocorrect bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.recordType, "record-type", "", "Record type")
	cmd.Flags().StringVar(&f.query, "query", "", "Search query")
	cmd.Flags().StringSliceVar(&f.recordIDs, "record-id", nil, "Restrict to these record IDs, repeatable")
	cmd.Flags().StringSliceVar(&f.objectTypes, "object-type", nil, "Restrict to these object types, repeatable")
	cmd.Flags().StringVar(&f.filters, "filters", "", `Filters as JSON, e.g. [["price","lessthan",10]]`)
	cmd.Flags().BoolVar(&f.hidden, "hidden", false, "Include hidden records")
	cmd.Flags().BoolVar(&f.disableAutocorrect, "disable-autocorrect", false, "Do not autocorrect the query")
}

func (a *App) newSchemaCmd() *cobra.Command {
	var (
		q                   queryFlags
		excludedProperties  []string
		aggregateProperties []string
		sortByCount         bool
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Get the property values and counts of matching records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := models.ParseFilters(q.filters)
			if err != nil {
				return a.fail(cmd, app.MsgErrorPreparingRequest, err)
			}

			result, err := a.session.services.OmniSearch.Schema(cmd.Context(), models.SchemaQuery{
				RecordType:          q.recordType,
				Query:               q.query,
				RecordIDs:           q.recordIDs,
				ObjectTypes:         q.objectTypes,
				Filters:             filters,
				IncludeHidden:       q.hidden,
				DisableAutocorrect:  q.disableAutocorrect,
				ExcludedProperties:  excludedProperties,
				AggregateProperties: aggregateProperties,
				SortByCount:         sortByCount,
			})
			return a.finish(cmd, app.MsgErrorCallingSchema, result, err)
		},
	}
	q.register(cmd)
	cmd.Flags().StringSliceVar(&excludedProperties, "excluded-properties", nil, "Properties to leave out of the schema")
	cmd.Flags().StringSliceVar(&aggregateProperties, "aggregate-properties", nil, "List properties to flatten before counting")
	cmd.Flags().BoolVar(&sortByCount, "sort-by-count", false, "Sort values by count")

	return cmd
}

func (a *App) newSearchCmd() *cobra.Command {
	var (
		q         queryFlags
		sortField string
		sortOrder string
		detailed  bool
		pages     pageFlags
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search records of a type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := models.ParseFilters(q.filters)
			if err != nil {
				return a.fail(cmd, app.MsgErrorPreparingRequest, err)
			}

			result, err := a.session.services.OmniSearch.Search(cmd.Context(), models.SearchQuery{
				RecordType:         q.recordType,
				Query:              q.query,
				RecordIDs:          q.recordIDs,
				ObjectTypes:        q.objectTypes,
				Filters:            filters,
				IncludeHidden:      q.hidden,
				DisableAutocorrect: q.disableAutocorrect,
				Sort: models.SortSpec{
					Property: sortField,
					Order:    models.SortOrder(strings.ToLower(sortOrder)),
				},
				Detailed:   detailed,
				Pagination: models.Pagination{Page: pages.page, PageSize: pages.pageSize},
			})
			return a.finish(cmd, app.MsgErrorCallingSearch, result, err)
		},
	}
	q.register(cmd)
	cmd.Flags().StringVar(&sortField, "sort-field", "", "Property to sort by")
	cmd.Flags().StringVar(&sortOrder, "sort-order", string(models.Ascending),
		"Sort order: ascending, descending, best_matches_first_then_ascending, best_matches_first_then_descending")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Return detailed results")
	pages.register(cmd, 1)

	return cmd
}
