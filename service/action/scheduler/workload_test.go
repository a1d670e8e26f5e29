package scheduler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

const textWorkload = `5 100
p1 150
p2 80
p3 200

p4 350
p5 20
`

const yamlWorkload = `quantum: 100
processes:
  - name: p1
    time: 150
  - name: p2
    time: 80
  - name: p3
    time: 200
  - name: p4
    time: 350
  - name: p5
    time: 20
`

func TestParseWorkload(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      []Process
		expectErr   error
	}{
		{description: "valid", text: textWorkload, expect: scenario()},
		{description: "fewer lines than declared", text: "2 100\np1 10\n", expect: []Process{{Name: "p1", Remaining: 10}}},
		{description: "more lines than declared", text: "1 100\np1 10\np2 20", expect: []Process{{Name: "p1", Remaining: 10}, {Name: "p2", Remaining: 20}}},
		{description: "missing header", text: "", expectErr: ErrInvalidWorkload},
		{description: "bad count", text: "x 100\n", expectErr: ErrInvalidWorkload},
		{description: "bad time", text: "1 100\np1 ten\n", expectErr: ErrInvalidWorkload},
		{description: "extra field", text: "1 100\np1 10 20\n", expectErr: ErrInvalidWorkload},
		{description: "zero quantum", text: "1 0\np1 10\n", expectErr: ErrInvalidQuantum},
		{description: "negative time", text: "1 10\np1 -10\n", expectErr: ErrInvalidProcess},
	}
	for _, testCase := range testCases {
		actual, err := ParseWorkload(testCase.text)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.Nil(t, actual, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, 100, actual.Quantum, testCase.description)
		assert.Equal(t, testCase.expect, actual.Processes, testCase.description)
	}
}

func TestDecodeWorkload(t *testing.T) {
	actual, err := DecodeWorkload([]byte(yamlWorkload))
	require.NoError(t, err)
	assert.Equal(t, &Workload{Quantum: 100, Processes: scenario()}, actual)

	_, err = DecodeWorkload([]byte("quantum: [1"))
	assert.ErrorIs(t, err, ErrInvalidWorkload)
}

func TestLoadWorkload(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	baseURL := "mem://localhost/alds/workload"
	for _, item := range []struct {
		URL  string
		data string
	}{
		{URL: baseURL + "/queue.txt", data: textWorkload},
		{URL: baseURL + "/queue.yaml", data: yamlWorkload},
	} {
		require.NoError(t, fs.Upload(ctx, item.URL, file.DefaultFileOsMode, strings.NewReader(item.data)))
		actual, err := LoadWorkload(ctx, fs, item.URL)
		require.NoError(t, err, item.URL)
		completed, err := New(actual.Quantum).Run(actual.Processes)
		require.NoError(t, err, item.URL)

		buffer := &bytes.Buffer{}
		require.NoError(t, WriteCompletions(buffer, completed))
		assert.Equal(t, "p2 180\np5 400\np1 450\np3 550\np4 800\n", buffer.String(), item.URL)
	}

	_, err := LoadWorkload(ctx, fs, baseURL+"/missing.txt")
	assert.Error(t, err)
}
