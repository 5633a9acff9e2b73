// Package lutio loads LUT files into lut.Table values and writes sizing
// results back out as CSV, TSV or XLSX.
//
// Cells are parsed as plain floats first and fall back to SI text
// ("1.5u"), which is how the width column of generated LUTs is stored.
// Loading is the only place SI text is decoded; every later computation
// works on absolute values.
package lutio
