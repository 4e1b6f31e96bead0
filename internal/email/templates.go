package email

import (
	"fmt"
	"html"
)

func validacaoPropostaBody(nomeCliente, link string) string {
	nome := html.EscapeString(nomeCliente)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Olá, %s!</h2>
  <p>Sua proposta de plano de saúde foi registrada pelo seu corretor.</p>
  <p>Para concluir a contratação, precisamos que você confirme seus dados e
  envie os documentos que faltam.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background: #1d4ed8; color: #fff; padding: 12px 24px;
       text-decoration: none; border-radius: 6px;">Completar minha proposta</a>
  </p>
  <p>Se o botão não funcionar, copie e cole este endereço no navegador:</p>
  <p>%s</p>
  <p>Qualquer dúvida, fale com o seu corretor.</p>
  <p>Equipe Contratando Planos</p>
</body>
</html>`, nome, link, link)
}
