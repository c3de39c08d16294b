package domain

// DocumentKind identifies an independently numbered family of documents.
type DocumentKind string

const (
	DocumentKindSale          DocumentKind = "sale"
	DocumentKindPurchaseOrder DocumentKind = "purchase_order"
)

// Prefix returns the alphabetic prefix used in document numbers of this kind.
func (k DocumentKind) Prefix() string {
	switch k {
	case DocumentKindSale:
		return "INV"
	case DocumentKindPurchaseOrder:
		return "PO"
	default:
		return ""
	}
}

// IsValid reports whether k is a known document kind.
func (k DocumentKind) IsValid() bool {
	return k.Prefix() != ""
}
