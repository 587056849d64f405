// Package order contains the Order aggregate root together with its status
// state machine and the value objects it is built from (Receiver, Address,
// Item).
//
// An order is created at checkout in Pending status with a 15-minute payment
// window. Payment settlement moves it to Confirmed or Cancelled; the kitchen
// and delivery flows then walk it through Preparing, Shipping and Delivered
// along the guarded transition table. ForceCancel is a deliberate unguarded
// escape used by compensating flows such as the expiration sweeper.
//
// The aggregate maintains these invariants:
//   - finalAmount = totalPrice + shippingFee at every observable moment
//   - every line item has a positive quantity and a non-negative price
//   - status only changes along the transition table, except via ForceCancel
package order
