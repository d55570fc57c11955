package details

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/store"
)

var allStatuses = []document.Status{
	document.StatusCreated,
	document.StatusInProgress,
	document.StatusDone,
	document.StatusRejected,
	document.StatusCancelled,
}

func TestCompose_VisibilityRules(t *testing.T) {
	tr := english(t)
	linkedCases := []*document.LinkedDocument{
		nil,
		{ID: ""},
		{ID: "l1", Number: "7"},
	}
	attachmentCases := [][]document.Attachment{
		nil,
		{},
		{{ID: "a1"}},
		{{ID: "a1"}, {ID: "a2"}},
	}

	for _, status := range allStatuses {
		for _, linked := range linkedCases {
			for _, attachments := range attachmentCases {
				d := document.DetailsState{ID: "doc-1", Status: status, LinkedDocument: linked, Attachments: attachments}
				p := Compose(loaded(d), document.ServiceRequest, tr)

				assert.Equal(t, status == document.StatusDone, p.Has(RegionDownload), "download for %s", status)
				assert.Equal(t, linked != nil && linked.ID != "", p.Has(RegionLinked), "linked %+v", linked)
				assert.Equal(t, len(attachments) > 0, p.Has(RegionAttachments), "attachments %d", len(attachments))

				for _, r := range []Region{RegionHeader, RegionActions, RegionStepper, RegionForm, RegionLetters, RegionFooter} {
					assert.True(t, p.Has(r), "%s always renders when not in error", r)
				}
				assert.False(t, p.Has(RegionRetry))
			}
		}
	}
}

func TestCompose_ErrorSuppressesDomainRegions(t *testing.T) {
	tr := english(t)
	for _, status := range allStatuses {
		for _, loading := range []bool{false, true} {
			d := loadedState(status)
			d.LinkedDocument = &document.LinkedDocument{ID: "l1"}
			p := Compose(store.Snapshot{Data: d, IsError: true, IsLoadingSkeleton: loading}, document.ServiceRequest, tr)

			assert.Equal(t, []Region{RegionHeader, RegionRetry}, p.Regions(), "status %s loading %v", status, loading)
			assert.False(t, p.Loading, "error wins over loading")
		}
	}
}

func TestCompose_InfoBanner(t *testing.T) {
	tr := i18n.NewCatalog(language.English, map[string]string{"info.request": "We are on it"})

	for _, status := range allStatuses {
		for _, svc := range []document.ServiceType{document.ServiceRequest, document.ServiceCard} {
			p := Compose(loaded(document.DetailsState{Status: status}), svc, tr)
			want := status == document.StatusCreated && svc == document.ServiceRequest
			assert.Equal(t, want, p.Has(RegionInfo), "status %s service %s", status, svc)
		}
	}
}

func TestCompose_LoadingHidesLoadedOnlyRegions(t *testing.T) {
	d := loadedState(document.StatusCreated)
	d.LinkedDocument = &document.LinkedDocument{ID: "l1"}
	p := Compose(store.Snapshot{Data: d, IsLoadingSkeleton: true}, document.ServiceRequest, english(t))

	assert.True(t, p.Loading)
	assert.Equal(t, []Region{
		RegionHeader, RegionActions, RegionStepper, RegionForm,
		RegionAttachments, RegionLetters, RegionFooter,
	}, p.Regions())

	d.Status = document.StatusDone
	p = Compose(store.Snapshot{Data: d, IsLoadingSkeleton: true}, document.ServiceRequest, english(t))
	assert.False(t, p.Has(RegionDownload))
}

func TestCompose_ScenarioA(t *testing.T) {
	p := Compose(loaded(loadedState(document.StatusCreated)), document.ServiceRequest, english(t))
	assert.Equal(t, "info.request", p.InfoKey)
	assert.False(t, p.Has(RegionDownload))
}

func TestCompose_ScenarioB(t *testing.T) {
	p := Compose(loaded(loadedState(document.StatusDone)), document.ServiceRequest, english(t))
	assert.True(t, p.Has(RegionDownload))
	assert.False(t, p.Has(RegionInfo))
}

func TestCompose_ScenarioD(t *testing.T) {
	d := loadedState(document.StatusInProgress)
	d.Attachments = []document.Attachment{}
	assert.False(t, Compose(loaded(d), document.ServiceRequest, english(t)).Has(RegionAttachments))

	d.Attachments = []document.Attachment{{ID: "a1", Name: "a1.pdf"}}
	assert.True(t, Compose(loaded(d), document.ServiceRequest, english(t)).Has(RegionAttachments))
}

func TestViewCounter(t *testing.T) {
	var c ViewCounter
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, 1, c.Increment())
	assert.Equal(t, 2, c.Increment())
	assert.Equal(t, 2, c.Value())
}
