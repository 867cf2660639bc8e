package tui

import (
	"context"
	"errors"

	"github.com/goliatone/go-feconfig/internal/style"
	"github.com/goliatone/go-feconfig/pkg/form"
	"github.com/goliatone/go-feconfig/pkg/model"
)

// Menu entries offered after the fields have been filled. The first entry is
// replaced by the form's action label when it has one.
const (
	ActionGenerate = "Generate FE Format"
	ActionEdit     = "Edit fields"
	ActionReset    = "Reset form"
	ActionQuit     = "Quit"
)

// Session drives a form controller from the terminal: it prompts for every
// field in form order, then loops on the action menu until the user quits.
type Session struct {
	controller *form.Controller
	driver     PromptDriver
}

// NewSession binds a controller to a prompt driver (survey by default).
func NewSession(controller *form.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, ErrNoController
	}
	s := applyOptions(options)
	return &Session{controller: controller, driver: s.driver}, nil
}

// Run prompts until the user quits. Failed submissions send the user back to
// the fields with their previous answers as defaults. ErrAborted is returned
// when the user interrupts a prompt.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	def := s.controller.Form()

	if err := s.intro(ctx, def); err != nil {
		return err
	}

	editing := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if editing {
			if err := s.promptFields(ctx, def); err != nil {
				return err
			}
			editing = false
		}

		actions := menu(def)
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: "Action",
			Options: actions,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch idx {
		case 0:
			if _, err := s.controller.Submit(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				editing = true
			}
		case 1:
			editing = true
		case 2:
			confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Clear every field?"})
			if err != nil {
				return err
			}
			if confirmed {
				s.controller.Reset()
				editing = true
			}
		default:
			return nil
		}
	}
}

func (s *Session) intro(ctx context.Context, def model.FormModel) error {
	if def.Title == "" && def.Description == "" {
		return nil
	}
	if def.Title != "" {
		if err := s.driver.Info(ctx, style.TitleStyle.Render(def.Title)); err != nil {
			return err
		}
	}
	if def.Description != "" {
		return s.driver.Info(ctx, style.Note("Note:", def.Description))
	}
	return nil
}

func (s *Session) promptFields(ctx context.Context, def model.FormModel) error {
	for _, field := range def.Fields {
		current, _ := s.controller.Field(field.Label)

		var value string
		if field.Type == model.FieldTypeEnum && len(field.Enum) > 0 {
			idx, err := s.driver.Select(ctx, SelectConfig{
				Message:      field.Label,
				Options:      field.Enum,
				DefaultIndex: indexOf(field.Enum, current),
				Help:         field.Description,
			})
			if err != nil {
				return err
			}
			if idx < 0 || idx >= len(field.Enum) {
				continue
			}
			value = field.Enum[idx]
		} else {
			help := field.Description
			if help == "" && field.Placeholder != "" {
				help = "e.g. " + field.Placeholder
			}
			text, err := s.driver.Input(ctx, InputConfig{
				Message: field.Label,
				Default: current,
				Help:    help,
			})
			if err != nil {
				return err
			}
			value = text
		}

		if err := s.controller.SetField(field.Label, value); err != nil {
			return err
		}
	}
	return nil
}

func menu(def model.FormModel) []string {
	generate := ActionGenerate
	if def.Action != "" {
		generate = def.Action
	}
	return []string{generate, ActionEdit, ActionReset, ActionQuit}
}
