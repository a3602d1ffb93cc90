// Package main provides localization for the lofistripes CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Caption images and cut transparent stripes into them": "画像にキャプションを付け、透明なストライプを入れます",

		// Commands
		"Caption and stripe one image":                          "1枚の画像にキャプションとストライプを描画",
		"Caption and stripe many images with the same settings": "同じ設定で複数の画像にキャプションとストライプを描画",
		"Show version information":                              "バージョン情報を表示",
		"lofistripes version %s":                                "lofistripes バージョン %s",

		// Shared flags
		"YAML config file":               "YAML設定ファイル",
		"TrueType or OpenType font file": "TrueType または OpenType フォントファイル",
		"Top caption":                    "上部キャプション",
		"Bottom caption":                 "下部キャプション",
		"Font size relative to the longer image side (default: 10)":   "画像の長辺に対するフォントサイズ（デフォルト: 10）",
		"Outline clamp mode (literal, minimum)":                       "縁取りの制限モード（literal, minimum）",
		"Normalize captions to NFC before layout":                     "レイアウト前にキャプションをNFC正規化する",
		"Number of stripe periods (0 = no stripes)":                   "ストライプの周期数（0 = ストライプなし）",
		"Opaque share of each stripe period in percent (default: 50)": "各周期の不透明部分の割合（%、デフォルト: 50）",
		"Log level (debug, info, warn, error)":                        "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                     "全てのログ出力を抑制",

		// Draw flags
		"Input image (PNG, JPEG, GIF, BMP, TIFF, WebP)":   "入力画像（PNG, JPEG, GIF, BMP, TIFF, WebP）",
		"Output PNG file path (required)":                 "出力PNGファイルパス（必須）",
		"Output render summary to file (Markdown format)": "レンダリングサマリーをファイルに出力（Markdown形式）",
		"Enable debug output":                             "デバッグ出力を有効化",
		"Directory for debug output":                      "デバッグ出力のディレクトリ",

		// Batch flags
		"Output directory (required)":             "出力ディレクトリ（必須）",
		"Number of workers (0 = number of CPUs)":  "ワーカー数（0 = CPU数）",
		"Replace existing outputs":                "既存の出力を上書き",
		"At least one image argument is required": "画像引数が少なくとも1つ必要です",

		// Errors
		"Error: %s": "エラー: %s",

		// Summary content
		"Render Summary": "レンダリングサマリー",
		"Input":          "入力",
		"Captions":       "キャプション",
		"Stripes":        "ストライプ",
		"Output":         "出力",
		"Item":           "項目",
		"Value":          "値",
		"Path":           "パス",
		"Format":         "形式",
		"Size":           "サイズ",
		"Top":            "上部",
		"Bottom":         "下部",
		"Font Size":      "フォントサイズ",
		"Scale":          "スケール",
		"Text Height":    "文字の高さ",
		"Padding":        "余白",
		"Outline":        "縁取り",
		"Disabled":       "無効",
		"Count":          "本数",
		"Height":         "高さ",
		"Bands":          "透明帯",
		"Expansion":      "拡張",
		"File Size":      "ファイルサイズ",
		"Generated at":   "生成日時",
		"none":           "なし",
	})
}
