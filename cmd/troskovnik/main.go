package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/config"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/server"
	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/util"
)

var (
	port    = flag.Int("port", 0, "port poslužitelja (config.toml ima prednost ako je port tamo postavljen)")
	devMode = flag.Bool("dev", false, "razvojni mod")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Centralna baza troškovnika")
	fmt.Println("==========================================")

	// učitaj konfiguraciju
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("učitavanje konfiguracije nije uspjelo, koriste se zadane vrijednosti: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// argumenti komandne linije imaju prednost pred zadanima
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("poslužitelj se pokreće na portu %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("pokretanje poslužitelja nije uspjelo: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("otvaram preglednik: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("preglednik se ne da otvoriti automatski, otvori ručno: %s\n", url)
		}
	} else {
		fmt.Printf("razvojni mod: otvori %s\n", url)
	}

	fmt.Println("\nCtrl+C za zaustavljanje...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nposlužitelj se gasi...")
}
