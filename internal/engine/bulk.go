package engine

import (
	"context"
	"fmt"

	"github.com/zjrosen/gridline/internal/bulkedit"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/pubsub"
)

// Batch is a bulk edit waiting to be persisted.
type Batch struct {
	ID      string
	Column  string
	Value   string
	Tickets []Ticket
}

// BatchResolution is the gateway's answer for a batch.
type BatchResolution struct {
	Batch  Batch
	Result gateway.BatchResult
}

// OpenBulk opens the bulk prompt for the focused column.
func (e *Engine) OpenBulk() error {
	if e.empty() {
		return ErrEmptyGrid
	}
	if e.bulkBatch != "" {
		return ErrBulkInFlight
	}
	if e.mode != ModeIdle {
		return fmt.Errorf("bulk edit unavailable while %s", e.mode)
	}
	col, _ := e.model.Column(e.sel.Focus().Col)
	return e.prompt.Open(e.model, col.ID)
}

// CancelBulk closes the prompt without writing.
func (e *Engine) CancelBulk() {
	e.prompt.Close()
}

// ApplyBulk writes value into every selected cell of the prompt's column.
// The model is updated at once; the prompt stays open until the batch
// resolves.
func (e *Engine) ApplyBulk(value string) (Batch, error) {
	if !e.prompt.IsOpen() {
		return Batch{}, bulkedit.ErrPromptClosed
	}
	if e.bulkBatch != "" {
		return Batch{}, ErrBulkInFlight
	}
	column := e.prompt.Column()
	coords, err := bulkedit.Plan(e.model, e.sel.Cells(), column, value)
	if err != nil {
		return Batch{}, err
	}

	batch := Batch{ID: e.opts.NewID(), Column: column, Value: value}
	for _, c := range coords {
		t, err := e.issue(c, value, batch.ID)
		if err != nil {
			log.ErrorErr(log.CatBulk, "bulk cell refused", err, "cell", c)
			continue
		}
		batch.Tickets = append(batch.Tickets, t)
	}
	e.bulkBatch = batch.ID
	log.Info(log.CatBulk, "bulk edit issued", "batch", batch.ID, "column", column, "cells", len(batch.Tickets))
	return batch, nil
}

// ExecuteBatch persists a batch, one outcome per ticket. Safe to call from
// any goroutine.
func (e *Engine) ExecuteBatch(ctx context.Context, b Batch) BatchResolution {
	if e.opts.Gateway == nil {
		out := make([]gateway.Outcome, len(b.Tickets))
		for i, t := range b.Tickets {
			out[i] = gateway.Outcome{Write: t.Write, Err: ErrNoGateway}
		}
		return BatchResolution{Batch: b, Result: gateway.NewBatchResult(out)}
	}
	writes := make([]gateway.Write, len(b.Tickets))
	for i, t := range b.Tickets {
		writes[i] = t.Write
	}
	return BatchResolution{Batch: b, Result: gateway.CommitMany(ctx, e.opts.Gateway, writes, e.opts.BulkConcurrency)}
}

// ResolveBatch resolves every ticket of a batch and reports the aggregate.
// Full or partial success clears the selection and closes the prompt; a
// total failure keeps both so the user can retry.
func (e *Engine) ResolveBatch(res BatchResolution) bulkedit.Report {
	b := res.Batch
	report := bulkedit.Report{Column: b.Column, Value: b.Value}

	for i, t := range b.Tickets {
		var err error
		if i < len(res.Result.Outcomes) {
			err = res.Result.Outcomes[i].Err
		} else {
			err = fmt.Errorf("no outcome for %s", t.Write)
		}
		switch e.Resolve(Resolution{Ticket: t, Err: err}).Status {
		case StatusCommitted:
			report.Succeeded++
		case StatusFailed:
			report.Failed++
		default:
			report.Discarded++
		}
	}
	report.Err = res.Result.Err()
	if e.bulkBatch == b.ID {
		e.bulkBatch = ""
	}

	if !report.KeepSelection() {
		e.sel.Clear()
		e.prompt.Close()
	}
	log.Info(log.CatBulk, "bulk edit resolved", "batch", b.ID, "outcome", report.Outcome(),
		"succeeded", report.Succeeded, "failed", report.Failed, "discarded", report.Discarded)
	e.publish(pubsub.ReportedEvent, Event{Report: &report})
	return report
}
