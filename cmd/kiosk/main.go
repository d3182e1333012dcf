package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"drivethru/internal/catalog"
	"drivethru/internal/db"
	"drivethru/internal/order"

	"github.com/joho/godotenv"
)

// Terminal kiosk: the full ordering flow without the HTTP layer.
// Transcripts are typed instead of spoken, everything else matches
// what the voice endpoint does.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	ctx := context.Background()

	var repo catalog.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		repo = catalog.NewPostgresRepository(pgDB)
	} else {
		repo = catalog.NewInMemoryRepository(nil)
	}

	catalogService := catalog.NewService(repo)
	if err := catalogService.EnsureSeeded(ctx); err != nil {
		log.Fatal("❌ Menu seed failed:", err)
	}

	service := order.NewService(catalogService)
	o := order.New()

	fmt.Println("🍔 Drive-thru kiosk. Ketik pesanan Anda, atau 'help' untuk perintah.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "keluar":
			return

		case "help":
			printHelp()

		case "menu":
			printMenu(ctx, catalogService)

		case "order", "pesanan":
			printOrder(o)

		case "checkout", "bayar":
			if err := o.ProceedToPayment(); err != nil {
				fmt.Println("tidak bisa:", err)
				continue
			}
			fmt.Printf("Total: Rp%d. Pilih metode: pay cash <jumlah> | pay ewallet | pay debit\n", o.Total())

		case "back", "kembali":
			if err := o.BackToOrdering(); err != nil {
				fmt.Println("tidak bisa:", err)
			}

		case "pay":
			handlePay(o, fields[1:])

		case "done", "selesai":
			if err := o.Complete(); err != nil {
				fmt.Println("tidak bisa:", err)
				continue
			}
			tendered := o.Tendered()
			fmt.Println(o.Receipt(&tendered))

		case "new", "baru":
			o.Restart()
			fmt.Println("Pesanan baru dimulai.")

		default:
			// Everything else is treated as a spoken order.
			added, warnings, err := service.ApplyTranscript(ctx, o, line)
			if err != nil {
				fmt.Println("tidak bisa:", err)
				continue
			}
			for _, w := range warnings {
				fmt.Println("⚠️ ", w)
			}
			for _, a := range added {
				fmt.Printf("+ %s x%d\n", a.DisplayName, a.Quantity)
			}
			if len(added) == 0 && len(warnings) == 0 {
				fmt.Println("Tidak ada item yang dikenali.")
			}
		}
	}
}

func handlePay(o *order.Order, args []string) {
	if len(args) == 0 {
		fmt.Println("pilih metode: pay cash <jumlah> | pay ewallet | pay debit")
		return
	}

	var method order.PaymentMethod
	switch strings.ToLower(args[0]) {
	case "cash", "tunai":
		method = order.PaymentCash
	case "ewallet":
		method = order.PaymentEWallet
	case "debit":
		method = order.PaymentDebitCard
	default:
		fmt.Println("metode tidak dikenal:", args[0])
		return
	}

	if err := o.SetPaymentMethod(method); err != nil {
		fmt.Println("tidak bisa:", err)
		return
	}

	if method == order.PaymentCash {
		if len(args) < 2 {
			fmt.Println("masukkan jumlah uang: pay cash <jumlah>")
			return
		}
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("jumlah tidak valid:", args[1])
			return
		}
		o.SetTendered(amount)
		if amount < o.Total() {
			fmt.Printf("Kekurangan: Rp%d\n", o.Total()-amount)
			return
		}
	}

	fmt.Println("Metode dipilih. Ketik 'selesai' untuk mencetak struk.")
}

func printHelp() {
	fmt.Println(`Perintah:
  <teks pesanan>     tambah item dari transkrip, mis. "mau dua burger"
  menu               tampilkan menu
  pesanan            tampilkan isi pesanan
  bayar              lanjut ke pembayaran
  kembali            kembali ke pemesanan
  pay cash <jumlah>  bayar tunai
  pay ewallet        bayar e-wallet
  pay debit          bayar kartu debit
  selesai            selesaikan dan cetak struk
  baru               mulai pesanan baru
  keluar             tutup kiosk`)
}

func printMenu(ctx context.Context, service *catalog.Service) {
	items, err := service.List(ctx)
	if err != nil {
		fmt.Println("tidak bisa memuat menu:", err)
		return
	}
	for _, item := range items {
		fmt.Printf("%-16s Rp%d\n", item.DisplayName, item.Price)
	}
}

func printOrder(o *order.Order) {
	lines := o.Lines()
	if len(lines) == 0 {
		fmt.Println("Pesanan masih kosong.")
		return
	}
	for i, l := range lines {
		fmt.Printf("%d. %s x%d = Rp%d\n", i+1, l.DisplayName, l.Quantity, l.Subtotal)
	}
	fmt.Printf("Total: Rp%d\n", o.Total())
}
