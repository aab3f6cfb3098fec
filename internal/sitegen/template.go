package sitegen

// The generated document is a single fixed Tailwind CDN page. Placeholders are
// substituted verbatim with a single non-rescanning pass, so placeholder-like
// text inside a user prompt survives untouched.

const sectionTemplate = `
        <section class="py-16 border-t border-white/10">
          <div class="max-w-6xl mx-auto px-6">
            <h3 class="text-2xl font-semibold text-white mb-4">Section {index}</h3>
            <p class="text-slate-300 leading-relaxed">{prompt} — auto-generated content block {index} with responsive layout and accessible typography. Customize freely.</p>
          </div>
        </section>
        `

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>AI Generated – FlamesBlue</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <link rel="preconnect" href="https://fonts.googleapis.com" />
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin />
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet" />
  <style>body{font-family:Inter,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial} .gradient{background: radial-gradient(1200px 800px at 50% 10%, rgba(99,102,241,.25), transparent), radial-gradient(1000px 600px at 80% 20%, rgba(56,189,248,.2), transparent), radial-gradient(800px 600px at 20% 20%, rgba(244,114,182,.15), transparent)} .glass{backdrop-filter:saturate(140%) blur(8px); background:rgba(2,6,23,.55); border:1px solid rgba(255,255,255,.08);}</style>
</head>
<body class="min-h-screen gradient bg-slate-950 text-slate-100">
  <header class="sticky top-0 z-40">
    <div class="max-w-6xl mx-auto px-6 py-4 flex items-center justify-between glass rounded-b-xl">
      <div class="flex items-center gap-3">
        <div class="w-8 h-8 rounded-lg bg-{color}-500/20 border border-{color}-500/30"></div>
        <span class="font-semibold">FlamesBlue AI</span>
      </div>
      <a href="#" class="px-4 py-2 rounded-lg bg-{color}-500 text-white hover:bg-{color}-400 transition">Get Started</a>
    </div>
  </header>

  <main>
    <section class="pt-16 pb-12">
      <div class="max-w-6xl mx-auto px-6 grid md:grid-cols-2 gap-10 items-center">
        <div>
          <h1 class="text-4xl md:text-5xl font-bold leading-tight">{title}</h1>
          <p class="mt-4 text-slate-300">A modern, responsive page created with FlamesBlue AI. Edit the text, change the colors, and export immediately.</p>
          <div class="mt-6 flex gap-3">
            <a class="px-5 py-3 rounded-lg bg-{color}-500 text-white hover:bg-{color}-400 transition">Primary action</a>
            <a class="px-5 py-3 rounded-lg border border-white/10 hover:border-white/20 transition">Secondary</a>
          </div>
        </div>
        <div class="glass rounded-2xl p-6">
          <div class="aspect-video rounded-xl bg-black/30 border border-white/10 flex items-center justify-center text-slate-400">Media</div>
        </div>
      </div>
    </section>

    {sections}

    <footer class="py-12 border-t border-white/10 mt-8">
      <div class="max-w-6xl mx-auto px-6 flex items-center justify-between">
        <span class="text-sm text-slate-400">Generated with FlamesBlue AI</span>
        <a class="text-sm text-{color}-400 hover:text-{color}-300" href="#">Export</a>
      </div>
    </footer>
  </main>
</body>
</html>`
