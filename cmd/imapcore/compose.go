package main

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/emersion/go-message/textproto"
	"github.com/spf13/cobra"

	"github.com/mailcore/go-imapcore/mimepart"
)

var composeFlags struct {
	subType  string
	preamble string
	sevenBit bool
}

var composeCmd = &cobra.Command{
	Use:   "compose FILE...",
	Short: "Write a MIME multipart body built from files to stdout",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mp, err := compose(args)
		if err != nil {
			return err
		}
		return writeBody(os.Stdout, mp)
	},
}

func init() {
	flag := composeCmd.Flags()
	flag.StringVar(&composeFlags.subType, "subtype", "mixed", "multipart subtype")
	flag.StringVar(&composeFlags.preamble, "preamble", "", "text written before the first part")
	flag.BoolVar(&composeFlags.sevenBit, "7bit", false, "encode all parts for a 7-bit transport")
	rootCmd.AddCommand(composeCmd)
}

func compose(files []string) (*mimepart.Multipart, error) {
	mp := mimepart.NewMultipart()
	mp.SetSubType(composeFlags.subType)
	mp.Preamble = composeFlags.preamble

	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		mp.AddPart(newFilePart(filepath.Base(name), data))
	}

	if composeFlags.sevenBit {
		mp.SetUsing7bitTransport()
	}
	return mp, nil
}

// newFilePart returns a text part for text files, an attachment otherwise.
func newFilePart(name string, data []byte) *mimepart.Part {
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "application/octet-stream"
	}

	if subType, ok := strings.CutPrefix(mediaType, "text/"); ok {
		return mimepart.NewTextPart(subType, string(data))
	}
	return mimepart.NewAttachmentPart(mediaType, name, data)
}

func writeBody(w io.Writer, mp *mimepart.Multipart) error {
	var h textproto.Header
	h.Set("MIME-Version", "1.0")
	h.Set("Content-Type", mp.ContentType())
	if err := textproto.WriteHeader(w, h); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	_, err := mp.WriteTo(w)
	return err
}
