// Copyright 2025 Maruf Hossain
// This file is part of the Monte-Carlo-Estimator toolkit.
//
// mcpi is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mcpi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with mcpi. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	log "github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/utils"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "Monte Carlo Pi Estimator",
		HelpName:  "mcpi",
		Usage:     "estimate π by uniform random sampling of the unit square",
		Copyright: "(c) 2025 Maruf Hossain",
		Flags: []cli.Flag{
			&utils.NumSamplesFlag,
			&utils.TrackProgressFlag,
			&utils.OutputFlag,
			&utils.IntermediateFlag,
			&utils.StepSizeFlag,
			&utils.RandomSeedFlag,
			&utils.ChartFileFlag,
			&log.LogLevelFlag,
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
