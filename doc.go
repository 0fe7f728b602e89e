// Package exposure computes the exposure of a portfolio of securities by
// holding, sector, country, region and market.
//
// It reads two tables. The securities table describes each security over one
// or more rows: its name, its TER and how it breaks down into holdings,
// sectors, countries and regions. A holding may be another security of the
// table, the security is then a fund of funds (or an ETF of stocks) and its
// exposure is looked through. The portfolio table gives the amount, or the
// weight, held in each security.
//
// The computation is a pipeline of pure stages:
//   - Merge folds the rows of the securities table into a Registry.
//   - Infer completes missing region and market breakdowns from countries,
//     using a ClassificationTable.
//   - Resolver expands fund references recursively, detecting cycles.
//   - Normalize turns the portfolio table into weights summing to 1.
//   - Aggregate sums the weighted exposures per Dimension.
//
// Analyze runs them all. Every input defect is an *Error, whose kind can be
// tested with errors.Is. Suspicious but usable inputs produce Warning values.
package exposure
