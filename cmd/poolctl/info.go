package main

import (
	"github.com/joshuapare/blockpool/internal/format"
	"github.com/spf13/cobra"
)

var (
	infoBlockSize int
	infoBlocks    int
)

func init() {
	cmd := newInfoCmd()
	cmd.Flags().IntVar(&infoBlockSize, "block-size", 256, "Usable bytes per block")
	cmd.Flags().IntVar(&infoBlocks, "blocks", 64, "Number of blocks")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report arena layout math for a prospective pool",
		Long: `The info command reports the arena layout a pool of the given shape
would reserve: aligned block capacity, per-block stride, total arena bytes,
and header overhead.

Example:
  poolctl info --block-size 200 --blocks 128
  poolctl info --block-size 200 --blocks 128 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

// LayoutInfo describes the arena footprint of a prospective pool.
type LayoutInfo struct {
	BlockSize    int     `json:"block_size"`
	AlignedSize  int     `json:"aligned_size"`
	Blocks       int     `json:"blocks"`
	Stride       int     `json:"stride"`
	ArenaBytes   int     `json:"arena_bytes"`
	UsableBytes  int     `json:"usable_bytes"`
	OverheadPct  float64 `json:"overhead_pct"`
	HeaderSize   int     `json:"header_size"`
	IsReservable bool    `json:"is_reservable"`
}

func runInfo() error {
	aligned := format.Align8(infoBlockSize)
	stride := format.Stride(aligned)
	arenaBytes := int64(stride) * int64(infoBlocks)

	info := LayoutInfo{
		BlockSize:    infoBlockSize,
		AlignedSize:  aligned,
		Blocks:       infoBlocks,
		Stride:       stride,
		ArenaBytes:   int(arenaBytes),
		UsableBytes:  aligned * infoBlocks,
		HeaderSize:   format.BlockHeaderSize,
		IsReservable: infoBlockSize > 0 && infoBlocks > 0 && arenaBytes <= format.MaxArenaSize,
	}
	if arenaBytes > 0 {
		info.OverheadPct = float64(arenaBytes-int64(info.UsableBytes)) / float64(arenaBytes) * 100
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("Pool Layout:\n")
	printInfo("  Requested block size: %d bytes\n", info.BlockSize)
	printInfo("  Aligned block size: %d bytes\n", info.AlignedSize)
	printInfo("  Blocks: %d\n", info.Blocks)
	printInfo("  Per-block stride: %d bytes (%d-byte header)\n", info.Stride, info.HeaderSize)
	printInfo("  Arena: %d bytes (%d usable, %.1f%% overhead)\n",
		info.ArenaBytes, info.UsableBytes, info.OverheadPct)
	if !info.IsReservable {
		printInfo("  WARNING: this shape cannot be reserved\n")
	}
	return nil
}
