package export

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"image/png"
	"io"

	"cellsim/internal/core"
	"cellsim/internal/render"

	"github.com/pkg/errors"
)

var magic = [4]byte{'C', 'S', 'I', 'M'}

// Dump is a full raw readout of a grid: W*H cells of four float32 channels in
// storage order.
type Dump struct {
	W, H int
	Data []float32
}

// Snapshot copies grid into a Dump.
func Snapshot(grid *core.Grid) Dump {
	return Dump{W: grid.W, H: grid.H, Data: grid.Raw()}
}

// Grid rebuilds a grid from the dump.
func (d Dump) Grid() (*core.Grid, error) {
	if d.W <= 0 || d.H <= 0 || len(d.Data) != d.W*d.H*core.NumChannels {
		return nil, errors.Errorf("dump: %d values do not fit %dx%d", len(d.Data), d.W, d.H)
	}
	g := core.NewGrid(d.W, d.H)
	cells := g.Cells()
	for i := range cells {
		copy(cells[i][:], d.Data[i*core.NumChannels:(i+1)*core.NumChannels])
	}
	return g, nil
}

// Write encodes the dump as a header followed by quantized, run-length
// encoded channel values.
func (d Dump) Write(w io.Writer) error {
	var hdr [12]byte
	copy(hdr[:4], magic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(d.W))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(d.H))
	body := AppendRuns(nil, Compress(Quantize(d.Data)))

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "dump: write header")
	}
	if _, err := bw.Write(body); err != nil {
		return errors.Wrap(err, "dump: write body")
	}
	return errors.Wrap(bw.Flush(), "dump: flush")
}

// Read decodes a dump written by Write. Values come back quantized.
func Read(r io.Reader) (Dump, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Dump{}, errors.Wrap(err, "dump: read")
	}
	if len(raw) < 12 || !bytes.Equal(raw[:4], magic[:]) {
		return Dump{}, errors.New("dump: missing header")
	}
	d := Dump{
		W: int(binary.LittleEndian.Uint32(raw[4:8])),
		H: int(binary.LittleEndian.Uint32(raw[8:12])),
	}
	runs, err := ParseRuns(raw[12:])
	if err != nil {
		return Dump{}, err
	}
	d.Data = Dequantize(Decompress(runs))
	if len(d.Data) != d.W*d.H*core.NumChannels {
		return Dump{}, errors.Errorf("dump: decoded %d values for %dx%d", len(d.Data), d.W, d.H)
	}
	return d, nil
}

// WritePNG encodes the rendered colour image of grid.
func WritePNG(w io.Writer, grid *core.Grid) error {
	return errors.Wrap(png.Encode(w, render.Image(grid)), "dump: encode png")
}
