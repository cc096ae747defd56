// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command animator renders, checks, and plays animation documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/animator/base/logx"
	"cogentcore.org/animator/cmd/animator/cmd"
	"cogentcore.org/animator/cmd/animator/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := cmd.Root(&config.Config{}).ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, logx.ErrorColor("animator: "+err.Error()))
		os.Exit(1)
	}
}
