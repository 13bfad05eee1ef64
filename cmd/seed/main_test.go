package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"torchline_portal/internal/adapter/http/handlers/mocks"
	"torchline_portal/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestRootCmd(t *testing.T) {
	t.Run("hash flag and summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seeder := mocks.NewMockISeedUseCase(ctrl)
		seeder.EXPECT().Seed(gomock.Any(), usecase.SeedOptions{HashPasswords: true}).Return(usecase.SeedResult{Created: map[string]int{"users": 4, "services": 6}}, nil)

		cmd := newRootCmd(func(context.Context) (usecase.ISeedUseCase, error) { return seeder, nil })
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--hash-passwords"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := out.String()
		for _, want := range []string{"services", "users", "customer@example.com / customer123"} {
			if !strings.Contains(got, want) {
				t.Fatalf("expected %q in output, got %s", want, got)
			}
		}
		if strings.Index(got, "services") > strings.Index(got, "users") {
			t.Fatalf("expected collections sorted, got %s", got)
		}
	})

	t.Run("factory failure", func(t *testing.T) {
		cmd := newRootCmd(func(context.Context) (usecase.ISeedUseCase, error) { return nil, errors.New("bad config") })
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{})
		if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "bad config") {
			t.Fatalf("expected setup error, got %v", err)
		}
	})

	t.Run("seed failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seeder := mocks.NewMockISeedUseCase(ctrl)
		seeder.EXPECT().Seed(gomock.Any(), usecase.SeedOptions{}).Return(usecase.SeedResult{}, errors.New("seed users: down"))

		cmd := newRootCmd(func(context.Context) (usecase.ISeedUseCase, error) { return seeder, nil })
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{})
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
