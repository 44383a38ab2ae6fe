package generation

// Components is the boilerplate a new site starts from
var Components = []File{
	{
		Path: "templates/partials/navbar.html",
		Content: `{{define "nav"}}
<header data-nav data-transparent="{{if .Transparent}}true{{else}}false{{end}}">
  <nav data-nav-bar class="{{cn "fixed top-0 w-full z-50 transition-all duration-300" .BarClass}}">
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
      <div class="flex justify-between items-center h-16">
        <a href="{{.Brand.Href}}" class="text-xl font-bold">{{or .Brand.Text "Logo"}}</a>
        <div class="hidden md:flex ml-10 items-baseline space-x-4">
          {{range .Links}}
          <a data-nav-link href="{{.Href}}" class="px-3 py-2 rounded-md text-sm font-medium text-gray-700 hover:text-pink-600 transition-colors">{{.Label}}</a>
          {{end}}
        </div>
        <a data-nav-toggle href="{{.ToggleHref}}" role="button" class="md:hidden p-2">
          <span class="sr-only">{{.ToggleLabel}}</span>
        </a>
      </div>
    </div>
  </nav>
  <div data-nav-panel class="md:hidden"{{if not .MenuOpen}} hidden{{end}}>
    {{range .Links}}<a data-nav-link href="{{.Href}}" class="block py-2">{{.Label}}</a>{{end}}
  </div>
</header>
{{end}}
`,
	},
	{
		Path: "templates/partials/footer.html",
		Content: `{{define "footer"}}
<footer class="bg-gray-900 text-white">
  <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12">
    <div class="grid grid-cols-1 md:grid-cols-4 gap-8">
      <div class="col-span-1 md:col-span-2">
        <h3 class="text-xl font-bold mb-4">Tu Empresa</h3>
        <p class="text-gray-300 mb-4">Descripción breve de tu empresa y servicios.</p>
      </div>
      <div>
        <h4 class="font-semibold mb-4">Enlaces</h4>
        <ul class="space-y-2">
          <li><a href="/" class="text-gray-300 hover:text-white">Inicio</a></li>
          <li><a href="/servicios" class="text-gray-300 hover:text-white">Servicios</a></li>
          <li><a href="/contacto" class="text-gray-300 hover:text-white">Contacto</a></li>
        </ul>
      </div>
      <div>
        <h4 class="font-semibold mb-4">Contacto</h4>
        <ul class="space-y-2 text-gray-300">
          <li>📧 email@empresa.com</li>
          <li>📱 +52 33 1234 5678</li>
          <li>📍 Guadalajara, Jalisco</li>
        </ul>
      </div>
    </div>
    <div class="border-t border-gray-800 mt-8 pt-8 text-center text-gray-300">
      <p>&copy; {{.Year}} Tu Empresa. Todos los derechos reservados.</p>
    </div>
  </div>
</footer>
{{end}}
`,
	},
	{
		Path: "templates/partials/hero.html",
		Content: `{{define "hero"}}
<section class="relative min-h-screen flex items-center justify-center overflow-hidden">
  {{if .Image}}
  <div class="absolute inset-0 z-0">
    <img src="{{.Image}}" alt="Hero background" class="w-full h-full object-cover" />
    <div class="absolute inset-0 bg-black/50"></div>
  </div>
  {{end}}
  <div class="relative z-10 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center">
    <h1 class="text-4xl md:text-6xl font-bold mb-6 text-gray-900">{{.Title}}</h1>
    {{if .Subtitle}}<p class="text-xl md:text-2xl mb-8 text-gray-700 max-w-3xl mx-auto">{{.Subtitle}}</p>{{end}}
    <a href="{{or .CTALink "/contacto"}}" class="{{buttonClass "primary" "lg"}}">{{or .CTAText "Comenzar"}}</a>
  </div>
</section>
{{end}}
`,
	},
	{
		Path: "templates/partials/button.html",
		Content: `{{define "button"}}
<button type="{{or .Type "button"}}" class="{{buttonClass .Variant .Size .Class}}">{{.Label}}</button>
{{end}}
`,
	},
	{
		Path: "templates/layout.html",
		Content: `<!DOCTYPE html>
<html lang="es">
  <head>
    <meta charset="UTF-8" />
    <meta name="description" content="{{.SEO.Description}}" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <link rel="icon" type="image/svg+xml" href="/static/favicon.svg" />
    <link rel="stylesheet" href="/static/css/site.css" />
    <link rel="canonical" href="{{.SEO.Canonical}}" />
    <meta property="og:type" content="website" />
    <meta property="og:url" content="{{.SEO.URL}}" />
    <meta property="og:title" content="{{.SEO.Title}}" />
    <meta property="og:description" content="{{.SEO.Description}}" />
    <meta property="og:image" content="{{.SEO.Image}}" />
    <meta property="twitter:card" content="summary_large_image" />
    {{if .SEO.NoIndex}}<meta name="robots" content="noindex, nofollow" />{{end}}
    <title>{{.SEO.Title}}</title>
  </head>
  <body class="min-h-screen bg-white text-gray-900 font-sans antialiased">
    {{template "nav" .Nav}}
    <main id="contenido">{{template "content" .}}</main>
    {{template "footer" .Footer}}
    <script>{{.Nav.Script}}</script>
  </body>
</html>
`,
	},
	{
		Path: "data/projects.yaml",
		Content: `projects:
  - id: proyecto-ejemplo
    title: Proyecto de ejemplo
    description: Describe aquí tu curso o servicio.
    image: /static/images/proyecto.jpg
    tags: [ejemplo]
    featured: true
`,
	},
	{
		Path: "data/testimonials.yaml",
		Content: `testimonials:
  - id: testimonio-ejemplo
    name: Nombre Apellido
    role: Alumna
    content: Escribe aquí la opinión de tu cliente.
    rating: 5
`,
	},
	{
		Path: "data/pages/servicios.md",
		Content: `# Servicios

Describe tus servicios principales.
`,
	},
	{
		Path: "data/pages/nosotros.md",
		Content: `# Nosotros

Cuenta la historia de tu empresa.
`,
	},
}
