package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Supermarket-List/create-list/api"
	"github.com/Supermarket-List/create-list/builder"
	"github.com/Supermarket-List/create-list/cliparse"
	"github.com/Supermarket-List/create-list/format"
	"github.com/Supermarket-List/create-list/models"
	"github.com/Supermarket-List/create-list/session"
	"github.com/Supermarket-List/create-list/viewer"
)

// App wires the session store and API client to the terminal commands.
type App struct {
	Config  cliparse.Config
	Session *session.Store
	API     *api.Client
	In      io.Reader
	Out     io.Writer
}

const usage = `Comandos:
  register -n <nome> -t <telefone> -e <email>   cadastrar um novo usuário
  login -n <nome> -t <telefone>                 entrar com um cadastro existente
  logout                                        encerrar a sessão
  whoami                                        mostrar o usuário atual
  create                                        montar e salvar uma lista de compras
  lists                                         mostrar as listas salvas
  delete <id>                                   excluir uma lista salva
`

// Run dispatches one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Out, usage)
		return errors.New("nenhum comando informado")
	}

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "create":
		return a.create(ctx)
	case "lists":
		return a.lists(ctx)
	case "delete":
		return a.delete(ctx, args[1:])
	default:
		fmt.Fprint(a.Out, usage)
		return fmt.Errorf("comando desconhecido: %s", args[0])
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	nome := fs.String("n", "", "Nome completo")
	telefone := fs.String("t", "", "Telefone (ex: 11 91331-1054)")
	email := fs.String("e", "", "Email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nome == "" || *telefone == "" || *email == "" {
		return errors.New("register exige -n, -t e -e")
	}

	user, err := a.API.Register(ctx, format.CapitalizeWords(*nome), format.MaskPhone(*telefone), *email)
	if err != nil {
		a.dialog("Erro!", err.Error())
		return err
	}
	if err := a.Session.SetUser(user); err != nil {
		return err
	}

	a.dialog("Sucesso!", fmt.Sprintf("Bem-vindo, %s!", user.Nome))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	nome := fs.String("n", "", "Nome completo")
	telefone := fs.String("t", "", "Telefone")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nome == "" || *telefone == "" {
		return errors.New("login exige -n e -t")
	}

	user, err := a.API.Login(ctx, format.CapitalizeWords(*nome), format.MaskPhone(*telefone))
	if err != nil {
		a.dialog("Erro!", err.Error())
		return err
	}
	if err := a.Session.SetUser(user); err != nil {
		return err
	}

	a.dialog("Bem-vindo de volta!", fmt.Sprintf("Olá, %s!", user.Nome))
	return nil
}

func (a *App) logout() error {
	if err := a.Session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Sessão encerrada.")
	return nil
}

func (a *App) whoami() error {
	user := a.Session.Current()
	if user == nil {
		fmt.Fprintln(a.Out, "Não autenticado.")
		return nil
	}
	fmt.Fprintf(a.Out, "%s (id %s)\n", user.Nome, user.ID)
	return nil
}

// create runs the interactive draft loop until the user saves or quits.
func (a *App) create(ctx context.Context) error {
	b := builder.New(a.Session, a.API)
	r := bufio.NewReader(a.In)

	fmt.Fprintln(a.Out, "Adicione todos os itens à sua lista antes de salvar.")
	fmt.Fprintln(a.Out, "Cada \"salvar\" cria uma nova lista.")
	fmt.Fprintln(a.Out, `Comandos: add, rm <id>, total, itens, salvar, sair`)

	for {
		line, err := a.prompt(r, "> ")
		if err != nil {
			return nil // EOF ends the session, draft discarded
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "":
		case "add":
			a.addItem(b, r)
		case "rm":
			a.removeItem(b, r, arg)
		case "total":
			fmt.Fprintf(a.Out, "Total da Compra: %s\n", format.TotalBRL(b.Itens()))
		case "itens":
			a.printItens(b.Itens())
		case "salvar":
			done, err := a.save(ctx, b)
			if done {
				return err
			}
		case "sair":
			return nil
		default:
			fmt.Fprintf(a.Out, "Comando desconhecido: %s\n", cmd)
		}
	}
}

// addItem collects the four fields. The store field keeps its previous
// value when the user just presses enter.
func (a *App) addItem(b *builder.Builder, r *bufio.Reader) {
	store, err := a.prompt(r, fmt.Sprintf("Nome do Supermercado [%s]: ", b.Supermercado()))
	if err != nil {
		return
	}
	if store != "" {
		b.SetSupermercado(store)
	}

	produto, err := a.prompt(r, "Descrição do Produto: ")
	if err != nil {
		return
	}
	b.SetProduto(produto)

	valor, err := a.prompt(r, "Valor: ")
	if err != nil {
		return
	}
	b.SetValor(valor)

	quantidade, err := a.prompt(r, "Quantidade: ")
	if err != nil {
		return
	}
	b.SetQuantidade(quantidade)

	// A missing field silently blocks the add; mirror that with a short
	// notice instead of an error dialog.
	if !b.AddItem() {
		fmt.Fprintln(a.Out, "Item incompleto, nada adicionado.")
		return
	}
	fmt.Fprintf(a.Out, "Item adicionado. Total da Compra: %s\n", format.TotalBRL(b.Itens()))
}

func (a *App) removeItem(b *builder.Builder, r *bufio.Reader, arg string) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || !b.RequestRemove(id) {
		fmt.Fprintln(a.Out, "Item não encontrado.")
		return
	}

	answer, err := a.prompt(r, "Confirma a remoção do item? (s/n): ")
	if err != nil || !strings.EqualFold(answer, "s") {
		b.CancelRemove()
		fmt.Fprintln(a.Out, "Remoção cancelada.")
		return
	}

	b.ConfirmRemove()
	fmt.Fprintf(a.Out, "Item removido. Total da Compra: %s\n", format.TotalBRL(b.Itens()))
}

// save returns done=true when the create loop should end.
func (a *App) save(ctx context.Context, b *builder.Builder) (bool, error) {
	if !b.CanSave() {
		fmt.Fprintln(a.Out, "A lista está vazia, nada para salvar.")
		return false, nil
	}

	listaID, err := b.Save(ctx)
	if err != nil {
		a.dialog("Erro", err.Error())
		// Draft kept, let the user retry from the loop.
		return false, nil
	}

	a.dialog("Sucesso!", fmt.Sprintf("Sua lista foi salva com sucesso. ID da lista: %d", listaID))
	return true, nil
}

func (a *App) lists(ctx context.Context) error {
	v := viewer.New(a.Session, a.API)
	if err := v.Load(ctx); err != nil {
		a.dialog("Erro", err.Error())
		return err
	}

	a.printListas(v.Listas())
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("delete exige o id da lista")
	}
	listaID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id de lista inválido: %s", args[0])
	}

	v := viewer.New(a.Session, a.API)
	if err := v.Load(ctx); err != nil {
		a.dialog("Erro", err.Error())
		return err
	}

	if err := v.Delete(ctx, listaID); err != nil {
		a.dialog("Erro", err.Error())
		return err
	}

	fmt.Fprintf(a.Out, "Lista %d excluída com sucesso!\n", listaID)
	a.printListas(v.Listas())
	return nil
}

func (a *App) printListas(listas []models.Lista) {
	if len(listas) == 0 {
		fmt.Fprintln(a.Out, "Não há listas disponíveis para este usuário.")
		return
	}

	for _, lista := range listas {
		nome := "-"
		if lista.UserNome != nil {
			nome = *lista.UserNome
		}
		fmt.Fprintf(a.Out, "[%d] Lista de %s - %s (%s)\n",
			lista.ID, nome, lista.Data.Local().Format("02/01/2006"), humanize.Time(lista.Data))
		a.printItens(lista.Itens)
		fmt.Fprintf(a.Out, "    Total da Lista: %s\n", format.TotalBRL(lista.Itens))
	}
}

func (a *App) printItens(itens []models.Item) {
	for _, item := range itens {
		fmt.Fprintf(a.Out, "    [%d] %s - %s - %d unidades - (Supermercado) %s\n",
			item.ID, item.Produto, format.BRL(item.Valor), item.Quantidade, item.Supermercado)
	}
}

// dialog is the terminal stand-in for the titled modal.
func (a *App) dialog(title, body string) {
	fmt.Fprintf(a.Out, "=== %s ===\n%s\n", title, body)
}

func (a *App) prompt(r *bufio.Reader, label string) (string, error) {
	fmt.Fprint(a.Out, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
