// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Download fetches rawURL using client and writes the response body to a new
// file at dest. The file is created executable, since the only consumer runs
// it as an installer. On any error, dest is removed. A single attempt is
// made; there are no retries.
func Download(ctx context.Context, client *http.Client, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: url=%q: %w", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: url=%q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP response has unexpected status code: url=%q status=%03d", rawURL, resp.StatusCode)
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create file: %q: %w", dest, err)
	}

	_, err = io.Copy(f, resp.Body)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("I/O error while writing %q: %w", dest, err)
	}

	return nil
}
