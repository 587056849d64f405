// Package vnpay implements the payment gateway port against the VNPay
// redirect protocol. Outbound authorization URLs and inbound callbacks share
// one canonical form: parameters sorted by key, empty values dropped, keys
// and values query-escaped, signed with HMAC-SHA512 over the joined string.
package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

const (
	version   = "2.1.0"
	command   = "pay"
	currCode  = "VND"
	orderType = "other"
	locale    = "vn"

	// responseCodeSuccess is the provider's "approved" response code.
	responseCodeSuccess = "00"

	// authorizationWindow is how long a signed redirect URL stays valid at
	// the provider before it refuses the payment page.
	authorizationWindow = 15 * time.Minute

	timestampLayout = "20060102150405"
)

// gatewayLocation is the provider's fixed time zone. Timestamps in requests
// and callbacks are GMT+7 regardless of where this service runs.
var gatewayLocation = time.FixedZone("GMT+7", 7*60*60)

// Config carries the merchant credentials and endpoints for one VNPay
// terminal.
type Config struct {
	// BaseURL is the provider's payment page endpoint.
	BaseURL string

	// TmnCode is the merchant terminal code issued by the provider.
	TmnCode string

	// HashSecret is the shared HMAC key. Never logged.
	HashSecret string

	// ReturnURL is where the provider redirects the payer after the attempt.
	ReturnURL string
}

// Client signs authorization URLs and verifies callback signatures.
type Client struct {
	config Config
}

// NewClient validates the merchant configuration and creates a gateway
// client.
func NewClient(config Config) (*Client, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if strings.TrimSpace(config.TmnCode) == "" {
		return nil, errs.NewValueIsRequiredError("tmnCode")
	}
	if strings.TrimSpace(config.HashSecret) == "" {
		return nil, errs.NewValueIsRequiredError("hashSecret")
	}
	if strings.TrimSpace(config.ReturnURL) == "" {
		return nil, errs.NewValueIsRequiredError("returnURL")
	}
	return &Client{config: config}, nil
}

// BuildAuthorizationURL returns the full redirect URL for the given request,
// signature parameter included. The amount is scaled to the provider's minor
// units and timestamps are rendered in the provider's time zone.
func (c *Client) BuildAuthorizationURL(req ports.AuthorizationRequest) (string, error) {
	if strings.TrimSpace(req.TxnRef) == "" {
		return "", errs.NewValueIsRequiredError("txnRef")
	}
	if req.Amount <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", req.Amount))
	}

	now := time.Now().In(gatewayLocation)

	params := map[string]string{
		"vnp_Version":    version,
		"vnp_Command":    command,
		"vnp_TmnCode":    c.config.TmnCode,
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_CurrCode":   currCode,
		"vnp_TxnRef":     req.TxnRef,
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  orderType,
		"vnp_Locale":     locale,
		"vnp_ReturnUrl":  c.config.ReturnURL,
		"vnp_IpAddr":     req.ClientIP,
		"vnp_CreateDate": now.Format(timestampLayout),
		"vnp_ExpireDate": now.Add(authorizationWindow).Format(timestampLayout),
	}

	query := canonicalQuery(params)
	signature := c.sign(query)

	return fmt.Sprintf("%s?%s&vnp_SecureHash=%s", c.config.BaseURL, query, signature), nil
}

// VerifyCallback authenticates the raw callback parameters and decodes them.
// The hash parameters are excluded from the recomputed canonical form, and
// the comparison is case-insensitive because providers differ in hex casing.
func (c *Client) VerifyCallback(params map[string]string) (ports.CallbackResult, error) {
	received := params["vnp_SecureHash"]
	if received == "" {
		return ports.CallbackResult{}, errs.NewSignatureMismatchError("vnp_SecureHash")
	}

	signable := make(map[string]string, len(params))
	for key, value := range params {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		signable[key] = value
	}

	expected := c.sign(canonicalQuery(signable))
	if !strings.EqualFold(expected, received) {
		return ports.CallbackResult{}, errs.NewSignatureMismatchError("vnp_SecureHash")
	}

	var amount int64
	if raw := params["vnp_Amount"]; raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ports.CallbackResult{}, errs.NewValueIsInvalidErrorWithCause("vnp_Amount", err)
		}
		amount = parsed / 100
	}

	responseCode := params["vnp_ResponseCode"]

	return ports.CallbackResult{
		TxnRef:        params["vnp_TxnRef"],
		Success:       responseCode == responseCodeSuccess,
		Amount:        amount,
		TransactionNo: params["vnp_TransactionNo"],
		BankCode:      params["vnp_BankCode"],
		ResponseCode:  responseCode,
		PayDate:       params["vnp_PayDate"],
	}, nil
}

// canonicalQuery renders the signable form: empty values dropped, keys
// sorted, keys and values escaped the same way the provider does.
func canonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key, value := range params {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}
	return strings.Join(pairs, "&")
}

func (c *Client) sign(query string) string {
	mac := hmac.New(sha512.New, []byte(c.config.HashSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}
