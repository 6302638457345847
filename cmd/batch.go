package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/herutama7782/monobmp/raster"
	"github.com/herutama7782/monobmp/store"
	"github.com/spf13/cobra"
)

var archiveName string
var description string
var numWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch [IN_DIR] [OUT.bmdb]",
	Short: "Convert a directory of images into a 1-bit BMP archive",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("input directory and archive filenames are required")
		}
		info, err := os.Stat(args[0])
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input directory '%s' does not exist", args[0])
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("input '%s' must be a directory", args[0])
		}
		outDir, _ := path.Split(args[1])
		if outDir != "" {
			if _, err := os.Stat(outDir); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("output directory '%s' does not exist", outDir)
			}
		}
		if path.Ext(args[1]) != ".bmdb" {
			return errors.New("archive filename must end in '.bmdb'")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// validate flags
		if numWorkers < 1 {
			numWorkers = 1
		}
		if targetWidth < 1 || targetHeight < 1 {
			return errors.New("width and height must be at least 1")
		}
		if _, err := raster.NewBinarizer(mode); err != nil {
			return err
		}

		return batch(args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	batchCmd.Flags().StringVarP(&mode, "mode", "m", "dither", "binarization mode: 'dither' (Floyd-Steinberg) or 'threshold'")
	batchCmd.Flags().IntVarP(&targetWidth, "width", "W", raster.TargetWidth, "output width in pixels")
	batchCmd.Flags().IntVarP(&targetHeight, "height", "H", raster.TargetHeight, "output height in pixels")
	batchCmd.Flags().StringVarP(&archiveName, "name", "n", "", "archive name")
	batchCmd.Flags().StringVar(&description, "description", "", "archive description")
	batchCmd.Flags().IntVarP(&numWorkers, "workers", "w", 4, "number of workers to convert images")
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// listImages returns the decodable image files directly under dir.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			filenames = append(filenames, filepath.Join(dir, entry.Name()))
		}
	}
	return filenames, nil
}

func produce(filenames []string, queue chan<- string) {
	defer close(queue)

	for _, filename := range filenames {
		queue <- filename
	}
}

func batch(indirname string, outfilename string) error {
	// set defaults
	if archiveName == "" {
		archiveName = strings.TrimSuffix(path.Base(outfilename), filepath.Ext(outfilename))
	}

	filenames, err := listImages(indirname)
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		return fmt.Errorf("no image files found in '%v'", indirname)
	}

	db, err := store.NewWriter(outfilename, numWorkers)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.WriteMetadata(archiveName, description, mode, targetWidth, targetHeight); err != nil {
		return err
	}

	fmt.Println("Converting images")

	uiprogress.Start()
	bar := uiprogress.AddBar(len(filenames)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("%v (%4v/%4v)", archiveName, b.Current(), len(filenames))
	})

	queue := make(chan string)
	go produce(filenames, queue)

	var wg sync.WaitGroup
	errs := make(chan error, len(filenames)+numWorkers)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			con, err := db.GetConnection()
			if err != nil {
				errs <- err
				return
			}
			defer db.CloseConnection(con)

			for filename := range queue {
				src, err := decodeImage(filename)
				if err != nil {
					errs <- err
					continue
				}

				data, err := convertImage(src, mode, targetWidth, targetHeight)
				if err != nil {
					errs <- err
					continue
				}

				name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
				if err := store.WriteImage(con, name, data); err != nil {
					errs <- err
					continue
				}

				bar.Incr()
			}
		}()
	}

	wg.Wait()
	uiprogress.Stop()
	close(errs)

	var failed int
	for err := range errs {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%v of %v images could not be converted", failed, len(filenames))
	}

	fmt.Printf("Wrote %v images to %v\n", len(filenames), outfilename)
	return nil
}
