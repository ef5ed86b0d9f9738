package client

import (
	"fmt"

	"github.com/MKhiriev/go-omnisearch/internal/app"
	"github.com/MKhiriev/go-omnisearch/internal/richtext"
	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/spf13/cobra"
)

type objectFlags struct {
	recordID   string
	objectType string
}

func (f *objectFlags) register(cmd *cobra.Command, withType bool) {
	cmd.Flags().StringVar(&f.recordID, "record-id", "", "Record ID")
	if withType {
		cmd.Flags().StringVar(&f.objectType, "object-type", "", "Object type")
	}
}

func (a *App) newGetRecordObjectsCmd() *cobra.Command {
	var ref objectFlags

	cmd := &cobra.Command{
		Use:   "get-record-objects",
		Short: "Get all objects of a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.RecordObjects(cmd.Context(), ref.recordID)
			return a.finish(cmd, app.MsgErrorCallingRecordObjects, result, err)
		},
	}
	ref.register(cmd, false)

	return cmd
}

func (a *App) newCreateRecordObjectsCmd() *cobra.Command {
	var (
		ref       objectFlags
		templates templateFlags
	)

	cmd := &cobra.Command{
		Use:   "create-record-objects",
		Short: "Create or replace the objects of a record from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			objects, err := a.buildObjects(&templates)
			if err != nil {
				return a.fail(cmd, app.MsgErrorPreparingRequest, err)
			}

			result, err := a.session.services.OmniSearch.CreateRecordObjects(cmd.Context(), ref.recordID, toObjects(objects))
			return a.finish(cmd, app.MsgErrorCallingRecordObjects, result, err)
		},
	}
	ref.register(cmd, false)
	templates.registerObjects(cmd)

	return cmd
}

func (a *App) newDeleteRecordObjectsCmd() *cobra.Command {
	var ref objectFlags

	cmd := &cobra.Command{
		Use:   "delete-record-objects",
		Short: "Delete all objects of a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.DeleteRecordObjects(cmd.Context(), ref.recordID)
			return a.finish(cmd, app.MsgErrorCallingRecordObjects, result, err)
		},
	}
	ref.register(cmd, false)

	return cmd
}

func (a *App) newGetRecordObjectCmd() *cobra.Command {
	var ref objectFlags

	cmd := &cobra.Command{
		Use:   "get-record-objects-by-type",
		Short: "Get one object type of a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.RecordObject(cmd.Context(), ref.recordID, ref.objectType)
			return a.finish(cmd, app.MsgErrorCallingRecordObject, result, err)
		},
	}
	ref.register(cmd, true)

	return cmd
}

func (a *App) newUpdateRecordObjectCmd() *cobra.Command {
	var (
		ref       objectFlags
		templates templateFlags
	)

	cmd := &cobra.Command{
		Use:   "update-record-objects-by-type",
		Short: "Replace one object type of a record from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			objects, err := a.buildObjects(&templates)
			if err != nil {
				return a.fail(cmd, app.MsgErrorPreparingRequest, err)
			}
			object, ok := objects[ref.objectType]
			if !ok {
				return a.fail(cmd, app.MsgErrorPreparingRequest,
					fmt.Errorf("object type %q not found in %s", ref.objectType, templates.objects))
			}

			result, err := a.session.services.OmniSearch.UpdateRecordObject(cmd.Context(), ref.recordID, ref.objectType, object)
			return a.finish(cmd, app.MsgErrorCallingRecordObject, result, err)
		},
	}
	ref.register(cmd, true)
	templates.registerObjects(cmd)

	return cmd
}

func (a *App) newDeleteRecordObjectCmd() *cobra.Command {
	var ref objectFlags

	cmd := &cobra.Command{
		Use:   "delete-record-objects-by-type",
		Short: "Delete one object type of a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.DeleteRecordObject(cmd.Context(), ref.recordID, ref.objectType)
			return a.finish(cmd, app.MsgErrorCallingRecordObject, result, err)
		},
	}
	ref.register(cmd, true)

	return cmd
}

func (a *App) newRecordContentCmd() *cobra.Command {
	var ref objectFlags

	cmd := &cobra.Command{
		Use:   "get-record-objects-by-type-content",
		Short: "Get the content of one object type of a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.RecordContent(cmd.Context(), ref.recordID, ref.objectType)
			return a.finish(cmd, app.MsgErrorCallingRecordContent, result, err)
		},
	}
	ref.register(cmd, true)

	return cmd
}

func (a *App) newRecordTranscriptCmd() *cobra.Command {
	var ref objectFlags

	cmd := &cobra.Command{
		Use:   "get-record-objects-by-type-transcript",
		Short: "Get the transcript of one object type of a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.RecordTranscript(cmd.Context(), ref.recordID, ref.objectType)
			return a.finish(cmd, app.MsgErrorCallingRecordTranscript, result, err)
		},
	}
	ref.register(cmd, true)

	return cmd
}

// buildObjects renders the objects template and converts its portable text.
func (a *App) buildObjects(templates *templateFlags) (models.Document, error) {
	req, err := templates.request()
	if err != nil {
		return nil, err
	}

	objects, err := a.session.pipeline.BuildObjects(req.GeneratePath, req.Overrides, templates.objects)
	if err != nil {
		return nil, err
	}
	return richtext.Convert(objects)
}

// toObjects maps a rendered objects template onto the create-objects
// payload: null entries keep the stored content, other entries replace it.
// Object types missing from the template are removed by the service.
func toObjects(doc models.Document) models.Objects {
	objects := make(models.Objects, len(doc))
	for objectType, content := range doc {
		if content == nil {
			objects.Keep(objectType)
			continue
		}
		objects.Set(objectType, content)
	}
	return objects
}
