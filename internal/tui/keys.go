package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab      key.Binding
	PrevTab      key.Binding
	Connect      key.Binding
	Accounts     key.Binding
	Transactions key.Binding
	Disconnect   key.Binding
	Refresh      key.Binding
	Enter        key.Binding
	Close        key.Binding
	UpDown       key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Connect:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect bank")),
		Accounts:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accounts")),
		Transactions: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transactions")),
		Disconnect:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disconnect")),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		UpDown:       key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Connect, k.Accounts, k.Transactions, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Connect, k.Accounts},
		{k.Transactions, k.Disconnect, k.Refresh, k.Quit},
	}
}
