package document

// Type is the document-type parameter the details view is opened with.
type Type string

const (
	TypeAccountStatement Type = "ACCOUNT_STATEMENT_REQUEST"
	TypeCertificate      Type = "CERTIFICATE_REQUEST"
	TypeComplaint        Type = "COMPLAINT"
	TypeCardReissue      Type = "CARD_REISSUE"
	TypeFreeForm         Type = "FREE_FORM_LETTER"
)

// ServiceType is the classification used as a key into translation lookups
// (e.g. "info.request", "type.request").
type ServiceType string

const (
	ServiceRequest ServiceType = "request"
	ServiceClaim   ServiceType = "claim"
	ServiceCard    ServiceType = "card"
	ServiceLetter  ServiceType = "letter"
	ServiceUnknown ServiceType = "unknown"
)

var serviceTypes = map[Type]ServiceType{
	TypeAccountStatement: ServiceRequest,
	TypeCertificate:      ServiceRequest,
	TypeComplaint:        ServiceClaim,
	TypeCardReissue:      ServiceCard,
	TypeFreeForm:         ServiceLetter,
}

// Classify maps a document type to its service type.
func Classify(t Type) ServiceType {
	if st, ok := serviceTypes[t]; ok {
		return st
	}
	return ServiceUnknown
}
