package main

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	posterWidth  = 400
	posterHeight = 500
	qrSize       = 260

	posterFile       = "game_qr_code.png"
	instructionsFile = "hosting_instructions.txt"

	gameTitle = "Dr Boogie vs. The Catastrophes of Mikkeli"
)

func main() {
	url := "http://localhost:8002"
	if len(os.Args) > 1 {
		url = os.Args[1]
	}

	if err := createGameQRCode(url, posterFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate QR poster")
	}
	fmt.Printf("QR code saved as %s\n", posterFile)

	if err := writeHostingInstructions(url, instructionsFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to write hosting instructions")
	}
	fmt.Printf("Hosting instructions saved as %s\n", instructionsFile)
}

// createGameQRCode renders a printable poster: title and subtitle up top, the
// QR code in the middle, instructions and the raw URL at the bottom.
func createGameQRCode(url, filename string) error {
	qr, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		return err
	}
	qrImage := qr.Image(qrSize)

	dc := gg.NewContext(posterWidth, posterHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.DrawImage(qrImage, (posterWidth-qrSize)/2, 80)

	dc.SetRGB(0, 0, 0)

	loadFontFace(dc, 16)
	dc.DrawStringAnchored(gameTitle, posterWidth/2, 28, 0.5, 0.5)

	loadFontFace(dc, 24)
	dc.DrawStringAnchored("Scan to Play!", posterWidth/2, 58, 0.5, 0.5)

	loadFontFace(dc, 16)
	dc.DrawStringAnchored("Play on your mobile device!", posterWidth/2, posterHeight-62, 0.5, 0.5)

	loadFontFace(dc, 12)
	dc.SetRGB(0.5, 0.5, 0.5)
	dc.DrawStringAnchored(url, posterWidth/2, posterHeight-34, 0.5, 0.5)

	return dc.SavePNG(filename)
}

// loadFontFace tries a few common system fonts; the context keeps its built-in
// bitmap face when none of them exist, so the poster still renders everywhere.
func loadFontFace(dc *gg.Context, points float64) {
	for _, path := range []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/Library/Fonts/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	} {
		if err := dc.LoadFontFace(path, points); err == nil {
			return
		}
	}
}

func writeHostingInstructions(url, filename string) error {
	instructions := fmt.Sprintf(`# Dr Boogie Game - Hosting & QR Code Setup Guide

## Quick Setup Options

### 1. Local Network Access (Immediate)
The game server listens on port 8002 by default (override with PORT).
- Local: %s
- Network: use this machine's LAN IP, e.g. http://192.168.1.71:8002,
  for mobile devices on the same WiFi.

Share the network URL with mobile devices, or print game_qr_code.png and let
players scan it.

### 2. Cloud Hosting (Public Access)
1. Push this repository to GitHub.
2. Deploy to any Go-friendly host (Railway, Render, Fly.io):
   - Build Command: go build -o drboogie .
   - Start Command: ./drboogie
3. Set PORT to the value your host assigns.
4. Regenerate the QR code against the public URL:
   go run ./cmd/qrgen https://your-game-name.example.com

### Notes
- Scores live in a single SQLite file (DB_PATH, default game_scores.db).
  Back it up if the leaderboard matters to you.
- The bundled database is for development; start fresh for an event by
  pointing DB_PATH at a new file.
`, url)

	return os.WriteFile(filename, []byte(instructions), 0644)
}
