package main

import (
	"flag"
	"net"

	"github.com/samsamfire/rudp"
	"github.com/samsamfire/rudp/filexfer"
	log "github.com/sirupsen/logrus"
)

func main() {
	sendFile := flag.String("send", "", "path of a file to send")
	recvFile := flag.String("recv", "", "path to write a received file to")
	to := flag.String("to", "", "peer address (host:port), required with -send")
	listen := flag.String("listen", ":9000", "local bind address")
	configPath := flag.String("config", "", "optional INI config file (see rudp.LoadTunables)")
	verbose := flag.Bool("v", false, "enable protocol trace logging")
	deadline := flag.Duration("deadline", 0, "give up a single Sendto/Recvfrom call after this long (0 = wait forever, the reference behavior)")
	flag.Parse()

	tunables := rudp.DefaultTunables()
	if *configPath != "" {
		loaded, err := rudp.LoadTunables(*configPath)
		if err != nil {
			log.Fatalf("loading config %s: %v", *configPath, err)
		}
		tunables = loaded
	}
	if *verbose {
		tunables.Logs = true
	}
	if *deadline > 0 {
		tunables.Deadline = *deadline
	}
	if tunables.Bind != "" {
		*listen = tunables.Bind
	}

	sock := rudp.NewUDPSocket()
	handle := rudp.New(sock, tunables.Logs)
	handle.Deadline = tunables.Deadline
	if err := handle.Bind(*listen); err != nil {
		log.Fatalf("bind %s: %v", *listen, err)
	}
	defer handle.Close()

	switch {
	case *sendFile != "":
		if *to == "" {
			log.Fatal("-to is required with -send")
		}
		dest, err := net.ResolveUDPAddr("udp", *to)
		if err != nil {
			log.Fatalf("resolving %s: %v", *to, err)
		}
		sent, err := filexfer.SendFile(handle, *sendFile, dest)
		if err != nil {
			log.Fatalf("send failed after %d bytes: %v", sent, err)
		}
		log.Infof("sent %d bytes of %s to %s", sent, *sendFile, dest)

	case *recvFile != "":
		peer, n, err := filexfer.RecvFile(handle, *recvFile)
		if err != nil {
			log.Fatalf("receive failed after %d bytes: %v", n, err)
		}
		log.Infof("received %d bytes from %s into %s", n, peer, *recvFile)

	default:
		log.Fatal("specify -send <file> -to <addr> or -recv <file>")
	}
}
