package ports

// AuthorizationRequest carries the inputs for a signed redirect URL.
type AuthorizationRequest struct {
	// TxnRef is the correlation id linking the redirect to its callback.
	TxnRef string

	// Amount is the charge in VND major units; the adapter applies the
	// provider's minor-unit scaling.
	Amount int64

	// OrderInfo is the free-text order description shown to the payer.
	OrderInfo string

	// ClientIP is the paying customer's IP address.
	ClientIP string
}

// CallbackResult is the verified, decoded content of a gateway callback.
type CallbackResult struct {
	TxnRef        string
	Success       bool
	Amount        int64
	TransactionNo string
	BankCode      string
	ResponseCode  string
	PayDate       string
}

// PaymentGateway builds signed outbound authorization requests and verifies
// inbound callback signatures using the identical canonicalization. Both
// operations are pure with respect to application state.
type PaymentGateway interface {
	// BuildAuthorizationURL returns the full redirect URL including the
	// signature parameter.
	BuildAuthorizationURL(req AuthorizationRequest) (string, error)

	// VerifyCallback authenticates the raw callback parameters. It returns
	// a SignatureMismatchError when the recomputed signature does not match,
	// and the decoded result otherwise. Success reflects the provider's
	// response code only; amount reconciliation is the ledger's job.
	VerifyCallback(params map[string]string) (CallbackResult, error)
}
