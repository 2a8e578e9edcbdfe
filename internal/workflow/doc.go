// Package workflow holds the editorial state machines: which status changes each role may
// make to articles and blogs, and who may publish editions. It performs no I/O; the service
// layer consults it before touching storage and dashboards use it to decide which actions
// to offer, so both sides read the same table.
package workflow
