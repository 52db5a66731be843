// Package uniform exposes member uniform updates over HTTP.
//
// PUT /uniform/:memberId carries the complete desired item set of a member.
// The service runs it through the duplicate-submission guard and the
// reconciliation engine; GET /uniform/:memberId returns the stored record.
//
// Error responses map the error taxonomy to status codes: validation problems
// are 400, unknown stock 404, shortages and conflicts 409. A repeat of a
// request still in progress is answered with 202.
package uniform
