package client

import (
	"github.com/MKhiriev/go-omnisearch/internal/app"
	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/spf13/cobra"
)

func (a *App) newGetRecordsCmd() *cobra.Command {
	var (
		recordType string
		pages      pageFlags
	)

	cmd := &cobra.Command{
		Use:   "get-records",
		Short: "List records of a type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.Records(cmd.Context(), models.ListQuery{
				RecordType: recordType,
				Pagination: models.Pagination{Page: pages.page, PageSize: pages.pageSize},
			})
			return a.finish(cmd, app.MsgErrorCallingRecords, result, err)
		},
	}
	cmd.Flags().StringVar(&recordType, "record-type", "", "Record type")
	pages.register(cmd, 0)

	return cmd
}

func (a *App) newCreateRecordsCmd() *cobra.Command {
	var (
		recordType string
		name       string
		hidden     bool
		templates  templateFlags
	)

	cmd := &cobra.Command{
		Use:   "create-records",
		Short: "Create a record from templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := a.buildRecord(&templates, name, hidden)
			if err != nil {
				return a.fail(cmd, app.MsgErrorPreparingRequest, err)
			}
			record.Type = recordType

			result, err := a.session.services.OmniSearch.CreateRecord(cmd.Context(), record)
			return a.finish(cmd, app.MsgErrorCallingRecords, result, err)
		},
	}
	cmd.Flags().StringVar(&recordType, "record-type", "", "Record type")
	cmd.Flags().StringVar(&name, "name", "", "Record name")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Hide the record from searches")
	templates.registerRecord(cmd)

	return cmd
}

func (a *App) newGetRecordCmd() *cobra.Command {
	var recordID string

	cmd := &cobra.Command{
		Use:   "get-record",
		Short: "Get a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.Record(cmd.Context(), recordID)
			return a.finish(cmd, app.MsgErrorCallingRecord, result, err)
		},
	}
	cmd.Flags().StringVar(&recordID, "record-id", "", "Record ID")

	return cmd
}

func (a *App) newUpdateRecordCmd() *cobra.Command {
	var (
		recordID  string
		name      string
		hidden    bool
		templates templateFlags
	)

	cmd := &cobra.Command{
		Use:   "update-record",
		Short: "Update a record from templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := a.buildRecord(&templates, name, hidden)
			if err != nil {
				return a.fail(cmd, app.MsgErrorPreparingRequest, err)
			}

			result, err := a.session.services.OmniSearch.UpdateRecord(cmd.Context(), recordID, record)
			return a.finish(cmd, app.MsgErrorCallingRecord, result, err)
		},
	}
	cmd.Flags().StringVar(&recordID, "record-id", "", "Record ID")
	cmd.Flags().StringVar(&name, "name", "", "Record name")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Hide the record from searches")
	templates.registerRecord(cmd)

	return cmd
}

func (a *App) newDeleteRecordCmd() *cobra.Command {
	var recordID string

	cmd := &cobra.Command{
		Use:   "delete-record",
		Short: "Delete a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.DeleteRecord(cmd.Context(), recordID)
			return a.finish(cmd, app.MsgErrorCallingRecord, result, err)
		},
	}
	cmd.Flags().StringVar(&recordID, "record-id", "", "Record ID")

	return cmd
}

func (a *App) buildRecord(templates *templateFlags, name string, hidden bool) (models.Record, error) {
	req, err := templates.request()
	if err != nil {
		return models.Record{}, err
	}

	properties, data, err := a.session.pipeline.Build(req)
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{
		Name:       name,
		Properties: properties,
		Data:       data,
		Hidden:     hidden,
	}, nil
}
