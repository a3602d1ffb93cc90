package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Rendering %dx%d image":                "%dx%d の画像をレンダリング中",
		"Stripes drawn: %d bands":              "ストライプ描画完了: %d 本",
		"Canvas expanded: top %d, bottom %d":   "キャンバス拡張: 上 %d, 下 %d",
		"Caption drawn: %s":                    "キャプション描画完了: %s",
		"No captions, render completed":        "キャプションなし、レンダリングが完了しました",
		"Render completed: %dx%d":              "レンダリング完了: %dx%d",
		"Output saved to %s":                   "出力を %s に保存しました",
		"Summary saved to %s":                  "サマリーを %s に保存しました",
		"Debug output enabled: %s":             "デバッグ出力が有効です: %s",
		"Loading config %s":                    "設定 %s を読み込み中",
		"Interrupted, shutting down...":        "中断されました。シャットダウン中...",
		"Skipped %s: output exists":            "%s をスキップしました: 出力が既に存在します",
		"Failed to write summary: %s":          "サマリーの書き込みに失敗しました: %s",

		// Service
		"Image set: %s %dx%d":                  "画像を設定しました: %s %dx%d",
		"Font set: %d bytes":                   "フォントを設定しました: %d バイト",
		"Encoded %d bytes":                     "%d バイトにエンコードしました",

		// Stripes stage
		"Stripes disabled: count %d, height %d%%": "ストライプ無効: 本数 %d, 高さ %d%%",
		"Painted %d transparent stripes":          "%d 本の透明ストライプを描画しました",

		// Expand stage
		"Canvas expanded: top %d, bottom %d, %dx%d": "キャンバス拡張: 上 %d, 下 %d, %dx%d",

		// Layout stage
		"Font scale %.2f, text height %d, padding %d, outline %d": "フォントスケール %.2f, 文字高さ %d, 余白 %d, 縁取り %d",
		"Laid out %d glyphs at top %d, spacing %d":                "%d 文字を配置: 上端 %d, 字間 %d",

		// Caption stage
		"Drew %d glyphs with outline %d": "%d 文字を縁取り %d で描画しました",

		// Batch
		"Rendering %d images with %d workers": "%d 枚の画像を %d ワーカーでレンダリング中",
		"Rendered %s":                         "%s をレンダリングしました",
		"Batch completed: %d images":          "バッチ完了: %d 枚",

		// Errors
		"Failed to draw stripes: %s":          "ストライプの描画に失敗しました: %s",
		"Failed to draw text: font is empty":  "テキストの描画に失敗しました: フォントが空です",
		"Failed to measure text: %s":          "テキストの計測に失敗しました: %s",
		"Failed to expand canvas: %s":         "キャンバスの拡張に失敗しました: %s",
		"Failed to lay out %s caption: %s":    "%s キャプションの配置に失敗しました: %s",
		"Failed to draw %s caption: %s":       "%s キャプションの描画に失敗しました: %s",
		"Failed to decode image: %s":          "画像のデコードに失敗しました: %s",
		"Failed to load font: %s":             "フォントの読み込みに失敗しました: %s",
		"Failed to encode output: %s":         "出力のエンコードに失敗しました: %s",
		"Failed to render %s: %s":             "%s のレンダリングに失敗しました: %s",
		"Failed to write output: %s":          "出力の書き込みに失敗しました: %s",
	})
}
