// Copyright 2016 The Chihaya Authors. All rights reserved.
// Use of this source code is governed by the BSD 2-Clause license,
// which can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chihaya/bencode"
	"github.com/chihaya/bencode/pkg/log"
	"github.com/chihaya/bencode/pkg/metrics"
)

func rootRunCmdFunc(cmd *cobra.Command, args []string) error {
	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	var cfg Config
	if configFilePath != "" {
		configFile, err := ParseConfigFile(configFilePath)
		if err != nil {
			return errors.Wrap(err, "failed to read config")
		}
		cfg = configFile.Bencodec
	}

	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}
	log.SetDebug(cfg.Debug)
	if cfg.Debug {
		log.Info("enabled debug logging", nil)
	}

	canonical, err := cmd.Flags().GetBool("canonical")
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr)
		defer func() {
			if err := srv.Stop(); err != nil {
				log.Error("failed to shut down metrics server", log.Err(err))
			}
		}()
		log.Info("started serving metrics", log.Fields{"addr": cfg.MetricsAddr})
	}

	if len(args) == 0 {
		return decodeStream(os.Stdin, "stdin", cfg, canonical)
	}

	for _, path := range args {
		f, err := os.Open(os.ExpandEnv(path))
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		err = decodeStream(f, path, cfg, canonical)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// decodeStream decodes every top-level value in r, rendering each one to
// stdout, until the stream is cleanly exhausted or a value fails to decode.
func decodeStream(r io.Reader, name string, cfg Config, canonical bool) error {
	dec := bencode.NewDecoderLimits(r, cfg.Limits)
	for n := 0; ; n++ {
		start := time.Now()
		v, err := dec.Decode()
		recordDecodeDuration(err, time.Since(start))

		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("end of stream", log.Fields{"input": name, "values": n})
				return nil
			}
			return errors.Wrapf(err, "failed to decode %q", name)
		}

		if canonical {
			if _, err := os.Stdout.Write(bencode.Marshal(v)); err != nil {
				return errors.Wrap(err, "failed to write canonical bytes")
			}
		} else {
			fmt.Println(v)
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "bencodec",
		Short: "Bencode codec",
		Long:  "A command-line tool that decodes bencoded streams and renders or canonically re-encodes them",
		RunE:  rootRunCmdFunc,
	}
	rootCmd.Flags().String("config", "", "location of an optional configuration file")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")
	rootCmd.Flags().Bool("canonical", false, "re-encode each value to canonical bytes instead of rendering")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal("failed when executing root cobra command", log.Err(err))
	}
}
