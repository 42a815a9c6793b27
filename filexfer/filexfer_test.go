package filexfer

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/samsamfire/rudp"
	"github.com/samsamfire/rudp/internal/lossysock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRecvFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.bin")
	dst := filepath.Join(dir, "out.bin")

	content := bytes.Repeat([]byte{0x5A}, rudp.FileBuffer+37) // spans two chunks
	require.NoError(t, os.WriteFile(src, content, 0o600))

	senderEP, recvEP := lossysock.NewPair("198.51.100.10:9000", "198.51.100.11:9000")
	sender := rudp.New(senderEP, false)
	receiver := rudp.New(recvEP, false)

	var wg sync.WaitGroup
	wg.Add(2)

	var sendErr, recvErr error
	var recvN int

	go func() {
		defer wg.Done()
		_, recvN, recvErr = RecvFile(receiver, dst)
	}()
	go func() {
		defer wg.Done()
		_, sendErr = SendFile(sender, src, recvEP.LocalAddr().(*net.UDPAddr))
	}()
	wg.Wait()

	require.NoError(t, sendErr)
	require.NoError(t, recvErr)
	assert.Equal(t, len(content), recvN)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSendRecvEmptyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.bin")
	dst := filepath.Join(dir, "empty.out")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	senderEP, recvEP := lossysock.NewPair("198.51.100.12:9000", "198.51.100.13:9000")
	sender := rudp.New(senderEP, false)
	receiver := rudp.New(recvEP, false)

	var wg sync.WaitGroup
	wg.Add(2)
	var sendErr, recvErr error
	go func() {
		defer wg.Done()
		_, _, recvErr = RecvFile(receiver, dst)
	}()
	go func() {
		defer wg.Done()
		_, sendErr = SendFile(sender, src, recvEP.LocalAddr().(*net.UDPAddr))
	}()
	wg.Wait()

	require.NoError(t, sendErr)
	require.NoError(t, recvErr)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Empty(t, got)
}
