package main

const rootLong = `md2site generates a static website from a directory of Markdown files.

Every .md or .markdown file under the content directory becomes an .html
page at the same relative path under the output directory. The static
directory is mirrored into the output directory first.

Configuration is read from md2site.yaml in the working directory (or
--config), overridden by MD2SITE_* environment variables, overridden by
flags.`

const buildLong = `Generate the site.

Arguments:
  content    Markdown file or directory (default from config, "content")

Pages use the template's {{ Title }} and {{ Content }} placeholders. The
title is the page's first "# " heading unless --title is given.

Environment:
  MD2SITE_CONFIG, MD2SITE_CONTENT_DIR, MD2SITE_STATIC_DIR,
  MD2SITE_OUTPUT_DIR, MD2SITE_TEMPLATE, MD2SITE_BASE_PATH,
  MD2SITE_ENGINE, MD2SITE_HIGHLIGHT, MD2SITE_WORKERS
  Values are also read from .env (or --env-file).`

const buildExample = `  md2site build
  md2site build docs -o site --static assets
  md2site build --base-path /blog --highlight github
  md2site build notes.md --title "Notes" -o out
  md2site build --engine goldmark --metrics-file build.prom`

const initLong = `Write a starter md2site.yaml with the default settings.

With --scaffold, also create the content and static directories with an
index page and an empty stylesheet. Existing files are never overwritten
unless --force is given.`
