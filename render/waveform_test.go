package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdelacour/vcd"
	"github.com/tdelacour/vcd/render"
	"github.com/tdelacour/vcd/vcdtest"
)

func parse(t *testing.T, b *vcdtest.Builder) *vcd.Dump {
	t.Helper()
	d, err := vcd.Parse(b.Reader())
	require.NoError(t, err)
	return d
}

func TestWaveform_scalar(t *testing.T) {
	d := parse(t, vcdtest.New().
		Var("wire", 1, "!", "clk").
		EndDefinitions().
		At(0).Scalar("!", '1').
		At(5).Scalar("!", '0'))

	out, err := render.Waveform(d, []string{"clk"}, render.Options{Columns: 11, NoColor: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "clk (1 bit)", lines[0])
	// high for the whole span, one falling edge in the last sampled cell
	assert.Equal(t, "▔▔▔▔▔▔▔▔▔▔│", lines[1])
	assert.Equal(t, "0──────5 ps", lines[2])
}

func TestWaveform_vector(t *testing.T) {
	d := parse(t, vcdtest.New().
		Var("reg", 8, "#", "m_data").
		EndDefinitions().
		At(10).Vector("#", "00001010").
		At(20).Vector("#", "1100"))

	out, err := render.Waveform(d, []string{"m_data"}, render.Options{Columns: 11, NoColor: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "m_data (8 bit)", lines[0])
	// blank before the first change, then decoded values at each step
	assert.Equal(t, "     ╳10══╳", lines[1])
}

func TestWaveform_vector_undecodable(t *testing.T) {
	d := parse(t, vcdtest.New().
		Var("reg", 4, "#", "m_data").
		EndDefinitions().
		At(0).Vector("#", "xxxx"))

	out, err := render.Waveform(d, []string{"m_data"}, render.Options{Columns: 8, NoColor: true})
	require.NoError(t, err)
	// x decodes as zero magnitude rather than failing
	assert.Contains(t, out, "╳0")
}

func TestWaveform_cutoff(t *testing.T) {
	d := parse(t, vcdtest.New().
		Var("wire", 1, "!", "clk").
		EndDefinitions().
		At(0).Scalar("!", '0').
		At(100).Scalar("!", '1'))

	out, err := render.Waveform(d, []string{"clk"}, render.Options{MaxTime: 10, Columns: 8, NoColor: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// the change at 100 is past the cutoff: the trace stays low throughout
	assert.Equal(t, "▁▁▁▁▁▁▁▁", lines[1])
	assert.Contains(t, lines[2], "10 ps")
}

func TestWaveform_missing_signal(t *testing.T) {
	d := parse(t, vcdtest.New().
		Var("wire", 1, "!", "clk").
		EndDefinitions().
		At(0).Scalar("!", '1'))

	out, err := render.Waveform(d, []string{"nope", "clk"}, render.Options{Columns: 8, NoColor: true})
	require.NoError(t, err, "a missing name must not abort the other signals")
	assert.Contains(t, out, "signal nope not found")
	assert.Contains(t, out, "clk (1 bit)")
}

func TestWaveform_no_selection(t *testing.T) {
	d := parse(t, vcdtest.New().Var("wire", 1, "!", "clk").EndDefinitions())

	_, err := render.Waveform(d, nil, render.Options{})
	assert.Error(t, err)
}
