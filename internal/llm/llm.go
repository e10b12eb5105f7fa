package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for resume evaluation.
//
// AnalyzeResume and MatchJob return the provider's raw JSON payload; the
// consuming package normalizes it into a fully-populated structure.
// RewriteResume returns revised resume text.
type Client interface {
	AnalyzeResume(ctx context.Context, resumeText string) (json.RawMessage, error)
	MatchJob(ctx context.Context, input MatchInput) (json.RawMessage, error)
	RewriteResume(ctx context.Context, input RewriteInput) (string, error)
}

// MatchInput captures the inputs for a resume-to-job comparison.
type MatchInput struct {
	ResumeText     string
	JobDescription string
	TargetRole     string
}

// RewriteInput captures the inputs for improved-resume generation.
type RewriteInput struct {
	ResumeText         string
	JobDescription     string
	TargetRole         string
	RecommendedChanges json.RawMessage
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

func (PlaceholderClient) AnalyzeResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

func (PlaceholderClient) MatchJob(ctx context.Context, input MatchInput) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

func (PlaceholderClient) RewriteResume(ctx context.Context, input RewriteInput) (string, error) {
	return "", ErrNotConfigured
}
