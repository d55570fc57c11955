// Package details composes the details view of a document from one store
// snapshot: which regions render, which show placeholders, and which are
// hidden.
package details

import (
	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/store"
)

// Region is a visible part of the details view.
type Region string

const (
	RegionHeader      Region = "header"
	RegionRetry       Region = "retry"
	RegionActions     Region = "actions"
	RegionStepper     Region = "stepper"
	RegionInfo        Region = "info"
	RegionForm        Region = "form"
	RegionAttachments Region = "attachments"
	RegionLetters     Region = "letters"
	RegionDownload    Region = "download"
	RegionLinked      Region = "linked"
	RegionFooter      Region = "footer"
)

// Plan is the outcome of composing one snapshot.
type Plan struct {
	ServiceType document.ServiceType
	Error       bool
	Loading     bool   // data-bearing slots render placeholders
	InfoKey     string // translation key of the info banner, empty when hidden
	Download    bool
	Linked      bool
	Attachments bool
}

// Compose decides region visibility for a snapshot. The error flag hides
// every domain region. The loading flag hides regions that only exist for
// loaded data; the remaining regions draw their slots as placeholders.
func Compose(snap store.Snapshot, svc document.ServiceType, tr i18n.Translator) Plan {
	p := Plan{ServiceType: svc}
	if snap.IsError {
		p.Error = true
		return p
	}

	d := snap.Data
	p.Loading = snap.IsLoadingSkeleton
	p.Attachments = len(d.Attachments) > 0
	if p.Loading {
		return p
	}

	if key := "info." + string(svc); d.Status == document.StatusCreated && tr.Exists(key) {
		p.InfoKey = key
	}
	p.Download = d.Status == document.StatusDone
	p.Linked = d.HasLinkedDocument()
	return p
}

// Has reports whether region r renders.
func (p Plan) Has(r Region) bool {
	switch r {
	case RegionHeader:
		return true
	case RegionRetry:
		return p.Error
	case RegionActions, RegionStepper, RegionForm, RegionLetters, RegionFooter:
		return !p.Error
	case RegionInfo:
		return p.InfoKey != ""
	case RegionAttachments:
		return p.Attachments
	case RegionDownload:
		return p.Download
	case RegionLinked:
		return p.Linked
	default:
		return false
	}
}

// Regions returns the rendered regions in layout order.
func (p Plan) Regions() []Region {
	all := []Region{
		RegionHeader, RegionRetry, RegionActions, RegionStepper,
		RegionInfo, RegionForm, RegionAttachments, RegionLetters,
		RegionDownload, RegionLinked, RegionFooter,
	}
	out := make([]Region, 0, len(all))
	for _, r := range all {
		if p.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
