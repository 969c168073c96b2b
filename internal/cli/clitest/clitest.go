// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides utilities for testing command-line applications.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/fixlicense/internal/cli"
)

// Case represents a single test case for a command-line application.
type Case[App cli.App] struct {
	// Args are the command-line arguments to pass to the application.
	Args []string
	// Stdin is the optional standard input to pass to the application.
	Stdin io.Reader
	// Env are the environment variables visible to the application.
	Env map[string]string
	// WantErr is the expected error to be returned by the application, checked
	// with errors.Is.
	WantErr error
	// WantErrType is the expected type of the error to be returned by the
	// application, checked with errors.As.
	WantErrType error
	// WantNothingPrinted indicates that no output should be printed to stdout or
	// stderr.
	WantNothingPrinted bool
	// WantInStdout is the expected substring to be present in the stdout output.
	WantInStdout string
	// WantInStderr are substrings that must all be present in the stderr
	// output.
	WantInStderr []string
	// WantNotInStderr are substrings that must not be present in the stderr
	// output.
	WantNotInStderr []string
	// CheckFunc is an optional function to perform additional checks after the
	// application has run.
	CheckFunc func(*testing.T, App)
}

// Run runs the provided test cases against the given command-line application.
// The setup function is called for every case to create a fresh application.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}

			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Getenv: getenvFunc(tc.Env),
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			checkErr(t, err, tc.WantErr, tc.WantErrType)

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout must be empty, got: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr must be empty, got: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			for _, want := range tc.WantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr must contain %q, got: %q", want, stderr.String())
				}
			}
			for _, unwanted := range tc.WantNotInStderr {
				if strings.Contains(stderr.String(), unwanted) {
					t.Errorf("stderr must not contain %q, got: %q", unwanted, stderr.String())
				}
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr(t *testing.T, err, want, wantType error) {
	t.Helper()

	// Don't use && because we want to trap all cases where err is nil.
	if err == nil {
		if want != nil {
			t.Fatalf("must fail with error: %v", want)
		}
		if wantType != nil {
			t.Fatalf("must fail with error type %T", wantType)
		}
		return
	}

	if want == nil && wantType == nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if wantType != nil {
		target := reflect.New(reflect.TypeOf(wantType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error type %T, got %T", wantType, err)
		}
	}

	if want != nil && !errors.Is(err, want) {
		t.Fatalf("want error %v, got: %v", want, err)
	}
}

func getenvFunc(env map[string]string) func(string) string {
	return func(name string) string {
		if env == nil {
			return ""
		}
		return env[name]
	}
}
