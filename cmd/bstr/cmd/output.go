package cmd

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/bstr/foundation/core/error"
	"github.com/msto63/bstr/pkg/core/config"
)

// resultOutput is the JSON shape of commands that produce a single string
type resultOutput struct {
	Result string `json:"result"`
}

type indexOutput struct {
	Index int `json:"index"`
}

type countOutput struct {
	Count int `json:"count"`
}

type boolOutput struct {
	Result bool `json:"result"`
}

// emit writes text in text mode and payload as one JSON line in json mode
func emit(cmd *cobra.Command, text string, payload interface{}) error {
	out := cmd.OutOrStdout()

	if appConfig != nil && appConfig.General.Output == config.OutputJSON {
		data, err := json.Marshal(payload)
		if err != nil {
			return mdwerror.Wrap(err, "cannot encode output").WithCode(mdwerror.CodeInternal)
		}
		_, err = out.Write(append(data, '\n'))
		return err
	}

	_, err := fmt.Fprintln(out, text)
	return err
}

// textArg returns arg, or the whole standard input when arg is "-"
func textArg(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerror.Wrap(err, "cannot read standard input")
	}
	return string(data), nil
}
