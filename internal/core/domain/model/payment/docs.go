// Package payment contains the Payment aggregate: one record per
// authorization attempt against the gateway.
//
// A payment is created Pending together with a globally unique transaction
// reference (txnRef) that correlates the outbound redirect with the inbound
// callback. It mutates at most twice: once when the redirect URL is attached,
// once when the callback (or a superseding attempt) resolves it to Success or
// Failed. The ledger keeps at most one Pending payment per order by failing
// prior attempts before persisting a new one.
package payment
