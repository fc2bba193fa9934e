/*
Package cruxcat is the CAT Soft toolkit for a CRUX Linux laptop: it brings the machine onto the wireless network and into a desktop session, rewrites the supplicant configuration per location, and keeps the ports tree updated.

It separates the ordered command sequences (Logic) from their execution (Runner adapters) and side-effect observation (Hooks). This Hexagonal Architecture lets the same engine drive the privileged bring-up sequence, the unprivileged session sequence, and any caller-supplied command list.

# Concept

A startup is a fixed, ordered list of steps. Each step wraps one external command; the engine runs them strictly in order and checks every status immediately. The first non-zero status aborts the whole run. There is no retry and no rollback: a completed step is a committed side effect on the machine.

# Key Features

  - Deterministic Ordering: Steps run in declaration order, never concurrently.
  - Abort on First Failure: The failing step is named; later steps never start.
  - Hexagonal Architecture: The engine is decoupled from the process runner, so tests substitute a fake.
  - Process Replacement: A step may replace the process image instead of waiting, for desktop launchers.

# Usage

Build a Sequencer and hand it your steps. The default configuration runs real commands with inherited stdio.

	package main

	import (
		"context"
		"errors"
		"fmt"
		"os"

		"github.com/glebone/cruxcat"
		"github.com/glebone/cruxcat/pkg/domain"
	)

	func main() {
		seq := cruxcat.New()
		steps := []domain.Step{
			domain.Run("ip link set wlp59s0 up", "ip", "link", "set", "wlp59s0", "up"),
			domain.Run("dhcpcd", "dhcpcd", "wlp59s0"),
		}

		if err := seq.Run(context.Background(), steps); err != nil {
			var stepErr *domain.StepError
			if errors.As(err, &stepErr) {
				fmt.Printf("Error: %s failed.\n", stepErr.Label)
			}
			os.Exit(1)
		}
		fmt.Println("All commands completed successfully.")
	}
*/
package cruxcat
