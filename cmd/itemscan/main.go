package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"stylist-demo/internal/app"
	"stylist-demo/internal/application/usecases"
	"stylist-demo/internal/config"
	"stylist-demo/internal/domain/valueobjects"
)

var validExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

func main() {
	inDir := flag.String("in", "images", "directory of item photos")
	outDir := flag.String("out", "analyzed", "directory for descriptions and paired images")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	stylist, err := app.New(ctx, cfg, nil)
	if err != nil {
		log.Fatalf("Failed to initialize stylist: %v", err)
	}
	defer stylist.Close()

	files, err := os.ReadDir(*inDir)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	var failed int
	for _, file := range files {
		// 拡張子が対象のファイルのみ処理
		if file.IsDir() || !slices.Contains(validExtensions, strings.ToLower(filepath.Ext(file.Name()))) {
			continue
		}

		if err := scan(ctx, stylist.UseCase, filepath.Join(*inDir, file.Name()), *outDir); err != nil {
			log.Printf("%s: %v", file.Name(), err)
			failed++
			continue
		}
		log.Printf("%s: done", file.Name())
	}

	if failed > 0 {
		log.Fatalf("%d item(s) failed", failed)
	}
}

func scan(ctx context.Context, uc *usecases.StylistUseCase, path string, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// MIMEタイプはバイト列から判定
	analysis, err := uc.AnalyzeItemByImage(ctx, usecases.ItemImageInput{ImageData: data})
	if err != nil {
		return err
	}

	paired, err := valueobjects.ParseDataURI(analysis.ImageURL)
	if err != nil {
		return fmt.Errorf("paired image: %w", err)
	}

	// ファイル名の拡張子を除いたものをファイル名として保存
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if err := os.WriteFile(filepath.Join(outDir, name+".txt"), []byte(analysis.Description), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, fmt.Sprintf("%s_paired.%s", name, paired.Extension())), paired.Data(), 0o644)
}
