// Package sizing rescales LUT rows so that electrical quantities hit
// requested targets, and marks which rescaled rows meet every requested
// condition.
//
// # Overview
//
// The gm/id methodology assumes that, at fixed bias and channel length,
// gm, gmb, cgg and id grow linearly with the device width W while rout
// falls as 1/W. A condition such as "gm = 1.5m" therefore fixes, for every
// simulated row, the width that would deliver exactly that gm:
//
//	k  = target / gm      (proportional quantity)
//	k  = rout / target    (inverse quantity)
//	W' = W * k
//
// Every width-dependent column of the row is then rescaled by W'/W. Rows
// whose new geometry is impractical (W' >= WidthMax, or W'/L <= WidthOverLengthMin)
// are dropped.
//
// # Usage
//
//	ext, err := specs.Extend(table)
//	engine := sizing.NewEngine(scaling.Default(), sizing.DefaultOptions())
//	res, err := engine.Compute(ext, []string{"gm = 1.5e-3", "rout > 35e3"})
//	for _, i := range res.Passing() {
//		fmt.Println(res.Condition[i], res.Table.Row(i))
//	}
//
// # Conditions
//
// Conditions on a column classified Proportional or Inverse are resizing
// terms: each one produces a batch of rescaled rows. All other conditions
// are filters that only take part in the met_specs evaluation. A request
// without any resizing term fails with ErrInsufficientConditions.
//
// # Concurrency
//
// An Engine holds no mutable state and never modifies the base table, so a
// single base table may be resized from several goroutines at once. Inside
// Resize the batches of independent resizing terms are computed in
// parallel and joined in request order.
package sizing
