package document

// ActionID identifies an action offered in the details header.
type ActionID string

const (
	ActionCancel      ActionID = "cancel"
	ActionWriteLetter ActionID = "write_letter"
	ActionRepeat      ActionID = "repeat"
	ActionSign        ActionID = "sign"
)

// actionKeys are the fixed keys of the header actions.
var actionKeys = map[ActionID]string{
	ActionCancel:      "x",
	ActionRepeat:      "p",
	ActionSign:        "s",
	ActionWriteLetter: "w",
}

// ActionForKey reports which header action, if any, owns key.
func ActionForKey(key string) (ActionID, bool) {
	for id, k := range actionKeys {
		if k == key {
			return id, true
		}
	}
	return "", false
}

// Dispatcher receives the effects of executed actions. File updates go to
// the details store; everything else is a request for the host application.
type Dispatcher interface {
	UpdateFile(patch AttachmentPatch)
	Request(action ActionID, docID string)
}

// Action is an executable entry in the header action list.
type Action struct {
	ID    ActionID
	Key   string
	Label string // translation key
	Run   func()
}

// ListActions derives the actions available for the document in its
// current status. Run closures capture d and dispatch through dispatcher.
func ListActions(d DetailsState, dispatcher Dispatcher) []Action {
	request := func(id ActionID) func() {
		return func() { dispatcher.Request(id, d.ID) }
	}

	var actions []Action
	switch d.Status {
	case StatusCreated:
		actions = append(actions, Action{ID: ActionCancel, Key: actionKeys[ActionCancel], Label: "actions.cancel", Run: request(ActionCancel)})
	case StatusDone, StatusRejected, StatusCancelled:
		actions = append(actions, Action{ID: ActionRepeat, Key: actionKeys[ActionRepeat], Label: "actions.repeat", Run: request(ActionRepeat)})
	}

	if !d.Status.IsTerminal() && hasUnsigned(d.Attachments) {
		actions = append(actions, Action{
			ID:    ActionSign,
			Key:   actionKeys[ActionSign],
			Label: "actions.sign",
			Run: func() {
				signed := FileSigned
				for _, a := range d.Attachments {
					if a.FileState == FileUploaded {
						dispatcher.UpdateFile(AttachmentPatch{ID: a.ID, FileState: &signed})
					}
				}
			},
		})
	}

	if d.Status != StatusRejected && d.Status != StatusCancelled {
		actions = append(actions, Action{ID: ActionWriteLetter, Key: actionKeys[ActionWriteLetter], Label: "actions.write_letter", Run: request(ActionWriteLetter)})
	}

	return actions
}

func hasUnsigned(attachments []Attachment) bool {
	for _, a := range attachments {
		if a.FileState == FileUploaded {
			return true
		}
	}
	return false
}
