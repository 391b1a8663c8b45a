// Package cli はホテル予約ストアのコマンドラインフロントエンド
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const usage = `使い方: reservation [-json] <対象> <操作> [オプション]

対象と操作:
  hotel        create | show | list | update | delete | available
  customer     create | show | list | update | delete
  reservation  create | show | list | cancel

各操作のオプションは -h で確認できる`

// App はサービスをコマンドに結び付ける
type App struct {
	hotels       HotelServiceInterface
	customers    CustomerServiceInterface
	reservations ReservationServiceInterface
	out          io.Writer
	errOut       io.Writer
	json         bool
}

func NewApp(hs HotelServiceInterface, cs CustomerServiceInterface, rs ReservationServiceInterface, out, errOut io.Writer) *App {
	return &App{hotels: hs, customers: cs, reservations: rs, out: out, errOut: errOut}
}

// Run は引数を解釈してコマンドを実行する
// 使い方の誤りはメッセージを errOut に出力してから返す
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.run(ctx, args)
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(a.errOut, "エラー: "+ue.Message)
	}
	return err
}

func (a *App) run(ctx context.Context, args []string) error {
	fs := a.flagSet("reservation")
	fs.BoolVar(&a.json, "json", false, "結果をJSONで出力する")
	fs.Usage = func() { fmt.Fprintln(a.errOut, usage) }
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return usageErrorf("対象と操作を指定してください")
	}

	target, action, opts := rest[0], rest[1], rest[2:]
	switch target {
	case "hotel":
		return a.runHotel(ctx, action, opts)
	case "customer":
		return a.runCustomer(ctx, action, opts)
	case "reservation":
		return a.runReservation(ctx, action, opts)
	}
	fs.Usage()
	return usageErrorf("不明な対象: %s", target)
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parse はフラグを解釈し、必須フラグの欠落を確認する
func (a *App) parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}
	if fs.NArg() > 0 {
		return usageErrorf("余分な引数: %s", strings.Join(fs.Args(), " "))
	}
	set := visited(fs)
	for _, name := range required {
		if !set[name] {
			return usageErrorf("-%s は必須です", name)
		}
	}
	return nil
}

// visited は明示的に指定されたフラグ名を返す
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func unknownAction(target, action string) error {
	return usageErrorf("不明な操作: %s %s", target, action)
}

// render は -json 指定時は v を、それ以外は text を出力する
func (a *App) render(v any, text string) error {
	if a.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(a.out, text)
	return err
}
